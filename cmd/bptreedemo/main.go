// Command bptreedemo is an interactive REPL over an in-process bptree.Tree
// with string keys and values. Grounded on the liner-based CLI shape in the
// retrieval pack's cmd/cli/main.go, adapted from a network client (reading
// server responses off a TCP socket) to direct, in-process calls against a
// Tree — there is no server here, so the read/prompt loop talks straight to
// the library.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/l00pss/gobptree"
)

func main() {
	maxKeys := flag.Int("max-keys", 5, "maximum keys per node")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	tree, err := bptree.NewOrdered[string, string](*maxKeys, bptree.WithDebug[string, string](*debug))
	if err != nil {
		fmt.Println("failed to create tree:", err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".bptreedemo_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("bptreedemo: type 'help' for available commands")

	for {
		input, err := line.Prompt("bptree> ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			break
		}
		runCommand(tree, input)
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func runCommand(tree *bptree.Tree[string, string], input string) {
	fields := strings.Fields(input)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "help":
		printHelp()

	case "put":
		if len(args) != 2 {
			fmt.Println("usage: put <key> <value>")
			return
		}
		if err := tree.Put(args[0], args[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("ok")

	case "upsert":
		if len(args) != 2 {
			fmt.Println("usage: upsert <key> <value>")
			return
		}
		if err := tree.Upsert(args[0], args[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("ok")

	case "get":
		if len(args) != 1 {
			fmt.Println("usage: get <key>")
			return
		}
		v, err := tree.Get(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(v)

	case "del":
		if len(args) != 1 {
			fmt.Println("usage: del <key>")
			return
		}
		if err := tree.Remove(args[0]); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("ok")

	case "range":
		if len(args) != 2 {
			fmt.Println("usage: range <start> <end>")
			return
		}
		entries, err := tree.RangeEntries(args[0], args[1])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		for _, e := range entries {
			fmt.Printf("%s = %s\n", e.Key, e.Value)
		}

	case "stats":
		s := tree.Stats()
		fmt.Printf("count=%d height=%d nodes=%d\n", s.Count, s.Height, s.NodeCount)

	case "check":
		fmt.Println(tree.CheckInvariants())

	case "maxkeys":
		if len(args) != 1 {
			fmt.Println("usage: maxkeys <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("current tree retains its original max-keys; restart with -max-keys", n)

	default:
		fmt.Println("unknown command:", cmd, "(type 'help')")
	}
}

func printHelp() {
	fmt.Println(`commands:
  put <key> <value>      insert, fails if key exists
  upsert <key> <value>   insert or overwrite
  get <key>               look up a key
  del <key>               remove a key
  range <start> <end>     list keys in [start, end]
  stats                   count / height / node count
  check                   run the structural invariant audit
  exit                    quit`)
}
