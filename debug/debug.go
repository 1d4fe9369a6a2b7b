package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Query bool
	Edit  bool
	Exec  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PRAAT_DEBUG_PARSE")
	d.Query = boolEnv("PRAAT_DEBUG_QUERY")
	d.Edit = boolEnv("PRAAT_DEBUG_EDIT")
	d.Exec = boolEnv("PRAAT_DEBUG_EXEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
func Edit() bool {
	return d.Edit
}
func Exec() bool {
	return d.Exec
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(d)
	out.Write([]byte{'\n'})
}
