package plugin

import (
	"fmt"
	"os"
)

func list(ids []string) {
	for _, id := range ids {
		fmt.Fprintln(os.Stdout, id)
		fmt.Println(id)
	}
}
