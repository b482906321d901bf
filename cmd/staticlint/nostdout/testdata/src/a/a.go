package a

import (
	"fmt"
	"io"
	"os"
)

func report(w io.Writer, v int) {
	fmt.Println(v)                // want "прямой вывод в stdout через fmt.Println запрещен"
	fmt.Printf("%d\n", v)         // want "прямой вывод в stdout через fmt.Printf запрещен"
	fmt.Fprintln(os.Stdout, v)    // want "обращение к os.Stdout запрещено"
	fmt.Fprintln(w, v)
	fmt.Fprintln(os.Stderr, v)
	_ = fmt.Sprintf("%d", v)
}
