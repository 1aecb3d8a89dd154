// Package testconf computes the test-task defaults applied by these
// conventions.
package testconf

import (
	"runtime"
)

// Settings control how a project's test task forks and reports.
type Settings struct {
	UseJUnitPlatform  bool     `json:"useJUnitPlatform"`
	MaxParallelForks  int      `json:"maxParallelForks"`
	FailFast          bool     `json:"failFast"`
	LoggedEvents      []string `json:"loggedEvents"`
	ShowExceptions    bool     `json:"showExceptions"`
	ShowStandardOut   bool     `json:"showStandardOut"`
	MaxHeapPerForkMiB int      `json:"maxHeapPerForkMiB"`
}

// DefaultSettings returns the conventional test configuration for this host.
// Fork count follows the machine's processor count, never below one.
func DefaultSettings() *Settings {
	return settingsForProcessors(runtime.NumCPU())
}

func settingsForProcessors(processors int) *Settings {
	forks := processors
	if forks < 1 {
		forks = 1
	}
	return &Settings{
		UseJUnitPlatform:  true,
		MaxParallelForks:  forks,
		FailFast:          false,
		LoggedEvents:      []string{"passed", "skipped", "failed"},
		ShowExceptions:    true,
		ShowStandardOut:   false,
		MaxHeapPerForkMiB: 512,
	}
}
