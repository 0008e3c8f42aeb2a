package tools

import (
	"os"
	"strings"

	"github.com/golang/glog"
)

// ReadChunkArgOrFail resolves the parse-voxel argument: a literal base64
// string, or a path to a file holding one.
func ReadChunkArgOrFail(arg string) string {
	if _, err := os.Stat(arg); err != nil {
		return arg
	}
	content, err := os.ReadFile(arg)
	if err != nil {
		glog.Fatal(err)
	}
	return strings.TrimSpace(string(content))
}

func CreateDirectoryIfDoesNotExist(directory string) error {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		err := os.MkdirAll(directory, 0777)
		if err != nil {
			return err
		}
	}
	return nil
}
