//go:build js && wasm

package main

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/cottand/sugar/frontend"
)

// DesugarAndShow desugars the program in args[0] and returns the resulting tree or its diagnostics
func DesugarAndShow(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "desugaring panicked: " + fmt.Sprint(r)
		}
	}()

	shown, err := frontend.Show(context.Background(), []byte(args[0].String()), "program.sugar")
	if err != nil {
		return fmt.Sprintf("the compiler encountered a failure:\n\n%s", err)
	}
	return shown
}

func main() {
	js.Global().Set("DesugarAndShow", js.FuncOf(DesugarAndShow))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
