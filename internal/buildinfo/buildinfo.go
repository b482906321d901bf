package buildinfo

import "fmt"

// Значения подставляются при сборке через -ldflags "-X ..."
var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// String возвращает строку версии для --version
func String() string {
	return fmt.Sprintf("%s (date: %s, commit: %s)", BuildVersion, BuildDate, BuildCommit)
}
