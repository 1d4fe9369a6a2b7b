// Package runner runs Praat analysis scripts on WAV files.
//
// The Praat executable is found through a [Resolver] and run through an
// [Executor], so that both can be replaced. Analyses write Praat text
// objects next to their input by default, see [OutputPath]:
//
//	r := runner.New()
//	path, err := r.Formant(ctx, "hello.wav", "", runner.DefaultFormantParams())
//
// The scripts are shipped with the package. PRAAT_SCRIPTS names a
// directory of replacement scripts.
package runner
