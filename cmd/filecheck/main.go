package main

import (
	"flag"
	"fmt"
	"os"

	"ninjadmin/filecheck"
)

// Exit codes are a contract with the scheduling automation:
// 0 = file found, or no logged-on user resolvable
// 1 = input validation or unexpected error
// 2 = user and folders resolved but no matching file
func main() {
	folders := flag.String("folders", "", "folder wildcard pattern under the profile directory")
	files := flag.String("files", "", "file wildcard pattern inside each matching folder")
	profile := flag.String("profile", "", "profile directory (default: current user's home)")
	flag.Parse()

	if *folders == "" || *files == "" {
		fmt.Fprintln(os.Stderr, "filecheck: -folders and -files are required")
		os.Exit(1)
	}

	dir, ok := filecheck.ResolveProfile(*profile)
	if !ok {
		fmt.Println("filecheck: no logged-on user, nothing to check")
		os.Exit(0)
	}
	res, err := filecheck.Check(dir, *folders, *files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filecheck: %v\n", err)
		os.Exit(1)
	}
	switch res.Status {
	case filecheck.StatusFound:
		fmt.Printf("filecheck: found %s\n", res.Path)
		os.Exit(0)
	case filecheck.StatusNoUser:
		fmt.Println("filecheck: no logged-on user, nothing to check")
		os.Exit(0)
	default:
		fmt.Printf("filecheck: no file matching %q under %q\n", *files, *folders)
		os.Exit(2)
	}
}

// Usage:
//   go run ./cmd/filecheck -folders 'AppData\Local\8x8*' -files '8x8*.exe'
