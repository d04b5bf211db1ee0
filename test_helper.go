package investor

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// This file holds the logic to test the command examples embedded in the
// markdown documentation (README.md and docs/*.md).
//
// To make an example testable:
//
// 1.  Add the command to the markdown file, wrapped in a ```bash ... ``` block.
// 2.  Add the expected output right below, wrapped in a ```console ... ``` block.
//
// The test parses the file, runs each command in a directory shared by the
// whole file, and compares the output with the expected output.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildIvc builds the ivc command and returns the path to the executable.
func buildIvc(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "ivc")

	// Build the ivc command
	buildCmd := exec.Command("go", "build", "-o", output, "./ivc/")
	err := buildCmd.Run()
	if err != nil {
		t.Fatalf("failed to build ivc command: %v", err)
	}

	return output
}

// parseTestableCommands parses a markdown file to extract commands and their expected outputs.
func parseTestableCommands(t *testing.T, file string) []Command {
	t.Helper()

	// Read the file
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	// Parse the file
	repo := string(content)
	re := regexp.MustCompile("(?m)```bash\\n(ivc.*?)\\n```\\n\\n```console\n((.|\\n)*?)```")
	matches := re.FindAllStringSubmatch(repo, -1)

	var commands []Command
	for _, match := range matches {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}

	return commands
}

// runTestableCommands runs the testable commands from a given markdown file
// and returns how many it found. The commands of one file share a working
// directory, so later examples see the store earlier ones built.
func runTestableCommands(t *testing.T, file string) int {
	t.Helper()

	commands := parseTestableCommands(t, file)
	if len(commands) == 0 {
		return 0
	}

	tmp := t.TempDir()
	ivcPath := buildIvc(t, tmp)

	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", ivcPath, args)
		command := exec.Command(ivcPath, args[1:]...)
		command.Dir = tmp
		output, err := command.CombinedOutput()
		if err != nil {
			t.Fatalf("failed to run command: %v, output: \n%s", err, output)
		}
		result := string(output)
		// replace tabs with spaces for consistent comparison
		result = strings.ReplaceAll(result, "\t", "        ")

		if cmd.Expected != result {
			t.Errorf("expected output:\n%q\nbut got:\n%q", cmd.Expected, result)
		}
	}
	return len(commands)
}
