package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root so the logs/ directory and any .env file resolve
	// the same way for every package under test.
	//
	//   in some_test.go,
	//   import (
	//     _ "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
