package export

import (
	"os"
	"testing"
)

// testChdir changes the working directory to dir for the duration of the test
// and restores the previous one on cleanup (equivalent of t.Chdir, Go 1.24+).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
