package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Run(ctx context.Context, name string, args ...string) error {
	return m.Called(ctx, name, args).Error(0)
}

// writesOutput makes a mocked run create its output file.
func writesOutput(args mock.Arguments) {
	cmdArgs := args.Get(2).([]string)
	os.WriteFile(cmdArgs[3], []byte("ok"), 0o644)
}

func writeWAV(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           make([]int, 800),
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func testRunner(t *testing.T) (*Runner, *mockExecutor, string) {
	t.Helper()
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "hello.wav")
	writeWAV(t, wavPath)
	m := &mockExecutor{}
	r := New(
		WithResolver(StaticPath("/opt/praat")),
		WithExecutor(m),
		WithScriptDir("/scripts"),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return r, m, wavPath
}

func TestFormant(t *testing.T) {
	r, m, wavPath := testRunner(t)
	want := filepath.Join(filepath.Dir(wavPath), "hello.Formant")
	m.On("Run", mock.Anything, "/opt/praat", []string{
		"--run", "/scripts/soundToFormant.praat", wavPath, want,
		"0", "5", "5000", "0.025", "50",
	}).Run(writesOutput).Return(nil).Once()

	got, err := r.Formant(context.Background(), wavPath, "", DefaultFormantParams())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	m.AssertExpectations(t)
}

func TestVoiceReport(t *testing.T) {
	r, m, wavPath := testRunner(t)
	out := filepath.Join(t.TempDir(), "report.txt")
	m.On("Run", mock.Anything, "/opt/praat", []string{
		"--run", "/scripts/getVoiceReport.praat", wavPath, out,
		"0.5", "1.25", "0.01", "75", "600",
	}).Run(writesOutput).Return(nil).Once()

	got, err := r.VoiceReport(context.Background(), wavPath, out, 0.5, 1.25, DefaultPitchParams())
	require.NoError(t, err)
	assert.Equal(t, out, got)
	m.AssertExpectations(t)
}

func TestNoOutput(t *testing.T) {
	r, m, wavPath := testRunner(t)
	m.On("Run", mock.Anything, "/opt/praat", mock.Anything).Return(nil)

	_, err := r.Pitch(context.Background(), wavPath, "", DefaultPitchParams())
	assert.ErrorIs(t, err, ErrNoOutput)
	assert.ErrorIs(t, err, ErrExternalTool)
	var te *ExternalToolError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "/opt/praat", te.Tool)
	assert.Equal(t, "/scripts/soundToPitch.praat", te.Script)
}

func TestToolFailure(t *testing.T) {
	r, m, wavPath := testRunner(t)
	cause := errors.New("exit status 1")
	m.On("Run", mock.Anything, "/opt/praat", mock.Anything).Return(cause)

	_, err := r.TextGrid(context.Background(), wavPath, "")
	assert.ErrorIs(t, err, ErrExternalTool)
	assert.ErrorIs(t, err, cause)
}

func TestInvalidWAV(t *testing.T) {
	r, m, _ := testRunner(t)
	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav file"), 0o644))

	_, err := r.TextGrid(context.Background(), bad, "")
	assert.ErrorIs(t, err, ErrInvalidAudio)
	_, err = r.TextGrid(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), "")
	assert.ErrorIs(t, err, ErrInvalidAudio)
	m.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveFailure(t *testing.T) {
	r, m, wavPath := testRunner(t)
	WithResolver(StaticPath(""))(r)

	_, err := r.TextGrid(context.Background(), wavPath, "")
	assert.ErrorIs(t, err, ErrExternalTool)
	assert.ErrorIs(t, err, ErrNotFound)
	m.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestMakeFormants(t *testing.T) {
	r, m, wavPath := testRunner(t)
	m.On("Run", mock.Anything, "/opt/praat", mock.Anything).Run(writesOutput).Return(nil)
	ps := ParamSet{"i": {MaxFormants: 4, MaxHertz: 5500}}

	got, err := r.MakeFormants(context.Background(), wavPath, ps)
	require.NoError(t, err)
	assert.Equal(t, []string{FormantPath(wavPath, "default"), FormantPath(wavPath, "i")}, got)
	m.AssertNumberOfCalls(t, "Run", 2)
	last := m.Calls[1].Arguments.Get(2).([]string)
	assert.Equal(t, []string{"0", "4", "5500", "0", "0"}, last[4:])

	_, err = r.MakeFormants(context.Background(), wavPath, ps, "u")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

const tinyFormant = `File type = "ooTextFile"
Object class = "Formant 2"

xmin = 0
xmax = 0.01
nx = 1
dx = 0.01
x1 = 0.005
frames []:
    frames [1]:
        intensity = 1
        nFormants = 1
        formant []:
            formant [1]:
                frequency = 500
                bandwidth = 80
`

func TestFindFormant(t *testing.T) {
	wavPath := filepath.Join(t.TempDir(), "hello.wav")
	require.NoError(t, os.WriteFile(FormantPath(wavPath, DefaultKey), []byte(tinyFormant), 0o644))
	other := strings.Replace(tinyFormant, "500", "300", 1)
	require.NoError(t, os.WriteFile(FormantPath(wavPath, "u"), []byte(other), 0o644))

	f, err := FindFormant(wavPath, "i")
	require.NoError(t, err)
	v, _ := f.Frames[0].Get("f1", "frequency")
	assert.Equal(t, "500", v.String())

	f, err = FindFormant(wavPath, "u")
	require.NoError(t, err)
	v, _ = f.Frames[0].Get("f1", "frequency")
	assert.Equal(t, "300", v.String())
}

func TestLoadParamSet(t *testing.T) {
	ps, err := LoadParamSet(strings.NewReader(`
default:
  hertz_max: 5500
a:
  formant_max: 4
  window_length: 0.05
`))
	require.NoError(t, err)
	want := DefaultFormantParams()
	want.MaxHertz = 5500
	assert.Equal(t, want, ps["default"])
	want = DefaultFormantParams()
	want.MaxFormants = 4
	want.WindowLength = 0.05
	assert.Equal(t, want, ps["a"])
	assert.Equal(t, []string{"a", "default"}, ps.Keys())
}

type fakeInfo struct{ fs.FileInfo }

func TestResolvers(t *testing.T) {
	p, err := StaticPath("/x/praat").Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/x/praat", p)

	t.Setenv(PathEnv, "/env/praat")
	p, err = EnvResolver{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/env/praat", p)

	t.Setenv("PRAAT_TEST_UNSET", "")
	p, err = EnvResolver{Var: "PRAAT_TEST_UNSET", Fallback: StaticPath("/fallback")}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/fallback", p)
	_, err = EnvResolver{Var: "PRAAT_TEST_UNSET"}.Resolve()
	assert.ErrorIs(t, err, ErrNotFound)

	stat := func(path string) (fs.FileInfo, error) {
		if path == `C:\Program Files (x86)\Praat.exe` || path == "/usr/local/bin/praat" {
			return fakeInfo{}, nil
		}
		return nil, fs.ErrNotExist
	}
	p, err = PlatformResolver{GOOS: "windows", Stat: stat}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, `C:\Program Files (x86)\Praat.exe`, p)
	p, err = PlatformResolver{GOOS: "linux", Stat: stat}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/praat", p)
	_, err = PlatformResolver{GOOS: "darwin", Stat: stat}.Resolve()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/a/b.Formant", OutputPath("/a/b.wav", ".Formant"))
	assert.Equal(t, "/a/b.c-voice_report.txt", OutputPath("/a/b.c.WAV", "-voice_report.txt"))
	assert.Equal(t, "b-i.Formant", FormantPath("b.wav", "i"))
}

func TestExecExecutor(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no sh")
	}
	buf := &bytes.Buffer{}
	e := &ExecExecutor{Logger: slog.New(slog.NewTextHandler(buf, nil))}
	require.NoError(t, e.Run(context.Background(), sh, "-c", "echo to-stdout; echo to-stderr >&2"))
	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=to-stdout")
	assert.Contains(t, out, "level=WARN msg=to-stderr")

	err = e.Run(context.Background(), sh, "-c", "exit 3")
	assert.Error(t, err)
}

func TestShippedScripts(t *testing.T) {
	dir, err := extractScripts()
	require.NoError(t, err)
	for _, s := range []string{formantScript, pitchScript, textGridScript, reportScript} {
		d, err := os.ReadFile(filepath.Join(dir, s))
		require.NoError(t, err)
		assert.Contains(t, string(d), "infile$")
	}
}
