package lister_test

import (
	"fmt"
	"log"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/internal/files/lister"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

func Example() {
	mfs := filesystem.NewMemoryFileSystem("/tmp/x")
	mfs.AddFile("b.txt", 2)
	mfs.AddFile("a.txt", 1)
	mfs.AddDir("sub")

	l, err := lister.New(mfs, "/tmp/x", treewalk.Options{
		Order:    treewalk.OrderDirectoriesThenFiles,
		SafeMode: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for {
		ok, err := l.Next()
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			break
		}
		rec, _ := l.Current()
		fmt.Println(rec.Name(), rec.IsDir())
	}

	// Output:
	// sub true
	// a.txt false
	// b.txt false
}
