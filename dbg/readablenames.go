package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name turns arbitrary values (usually pointers) into stable, readable
// random names. It is meant for debugging output where several polygons are
// in flight at once and "0xc0000b4018" tells you nothing. The memo is never
// pruned, so this leaks by design; only use it from debug paths.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so keep them nondeterministic as
	// a reminder that the same name never means the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
