package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type initFile struct {
	Chat struct {
		Prompt        string `yaml:"prompt"`
		RecordMetrics bool   `yaml:"record_metrics"`
	} `yaml:"chat"`
	Journal struct {
		Path       string `yaml:"path"`
		MaxEntries int    `yaml:"max_entries"`
	} `yaml:"journal"`
	Metrics struct {
		Path string `yaml:"path"`
	} `yaml:"metrics"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file,omitempty"`
	} `yaml:"log"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file interactively",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.yaml")

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "Config file already exists: %s\n", configPath)
		fmt.Fprint(out, "Overwrite? (y/N) ")
		answer := ""
		if scanner.Scan() {
			answer = strings.TrimSpace(strings.ToLower(scanner.Text()))
		}
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	fmt.Fprintln(out, "Setting up tutor-cli")

	var f initFile
	fmt.Fprintln(out, "--- Chat ---")
	f.Chat.Prompt = prompt(scanner, out, "Input prompt", "You: ")
	f.Chat.RecordMetrics = promptBool(scanner, out, "Record session statistics", true)

	fmt.Fprintln(out, "\n--- Journal ---")
	f.Journal.Path = prompt(scanner, out, "Journal file", filepath.Join(dir, "journal.json"))
	f.Journal.MaxEntries = promptInt(scanner, out, "Entries to keep", 50)

	f.Metrics.Path = filepath.Join(dir, "metrics.jsonl")

	fmt.Fprintln(out, "\n--- Logging ---")
	f.Log.Level = prompt(scanner, out, "Log level", "warn")
	f.Log.File = prompt(scanner, out, "Log file (empty for stderr)", "")

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "\nCreated config file: %s\n", configPath)
	return nil
}

func prompt(scanner *bufio.Scanner, out io.Writer, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, defaultVal)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}

	if scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input != "" {
			return input
		}
	}
	return defaultVal
}

func promptInt(scanner *bufio.Scanner, out io.Writer, label string, defaultVal int) int {
	v, err := strconv.Atoi(prompt(scanner, out, label, strconv.Itoa(defaultVal)))
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}

func promptBool(scanner *bufio.Scanner, out io.Writer, label string, defaultVal bool) bool {
	def := "n"
	if defaultVal {
		def = "y"
	}
	switch strings.ToLower(prompt(scanner, out, label+" (y/n)", def)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return defaultVal
}
