package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan    bool
	Balance bool
	Parse   bool
	Encode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("NEST_DEBUG_SCAN")
	d.Balance = boolEnv("NEST_DEBUG_BALANCE")
	d.Parse = boolEnv("NEST_DEBUG_PARSE")
	d.Encode = boolEnv("NEST_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Balance() bool {
	return d.Balance
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
