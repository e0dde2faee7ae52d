// Package docs embeds the user manual of cpt.
//
// Each topic is a markdown file. readme.md is the entry point: it lists the topics, in
// reading order, as "* name: synopsis" lines.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var files embed.FS

const index = "readme"

// Topic is an entry of the manual index.
type Topic struct {
	Name     string
	Synopsis string
}

var indexLine = regexp.MustCompile(`^\*\s+([^:\s]+):\s*(.*)$`)

// Index returns the topics listed in readme.md, in reading order.
func Index() ([]Topic, error) {
	content, err := files.ReadFile(index + ".md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		if m := indexLine.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: m[1], Synopsis: strings.TrimSpace(m[2])})
		}
	}
	return topics, scanner.Err()
}

// GetAllTopics returns the names of the topics, in reading order.
func GetAllTopics() ([]string, error) {
	topics, err := Index()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names, nil
}

// GetTopic returns the markdown content of a topic.
func GetTopic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, run 'cpt topic' for the list", name)
	}
	return string(content), nil
}

// GetTopics returns the content of the given topics, separated by a blank line.
// "*" stands for every topic of the index.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			expanded = all
		}
		for _, n := range expanded {
			content, err := GetTopic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
