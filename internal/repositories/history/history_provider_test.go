package history

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
	"github.com/AntonioJCosta/cmdparse/internal/core/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestNewHistoryProvider(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	tests := []struct {
		name                 string
		shellEnv             string
		mockFileFinder       ports.HistoryFileFinder
		wantShell            string
		wantHistoryFile      string
		wantSourceIdentifier string
	}{
		{
			name:     "SHELL set, history file found by mock",
			shellEnv: "/bin/zsh",
			mockFileFinder: &testutil.MockHistoryFileFinder{
				FindFunc: func() (string, error) {
					return filepath.Join(homeDir, ".zsh_history"), nil
				},
			},
			wantShell:            "zsh",
			wantHistoryFile:      filepath.Join(homeDir, ".zsh_history"),
			wantSourceIdentifier: "File: ~/.zsh_history",
		},
		{
			name:     "SHELL set, history file not found by mock",
			shellEnv: "/usr/local/bin/Bash",
			mockFileFinder: &testutil.MockHistoryFileFinder{
				FindFunc: func() (string, error) {
					return "", errors.New("mock: no history file found")
				},
			},
			wantShell:            "bash",
			wantHistoryFile:      "",
			wantSourceIdentifier: "Shell: bash (history file not found or configured: mock: no history file found)",
		},
		{
			name:     "SHELL not set falls back to sh",
			shellEnv: "",
			mockFileFinder: &testutil.MockHistoryFileFinder{
				FindFunc: func() (string, error) {
					return "/var/tmp/hist", nil
				},
			},
			wantShell:            "sh",
			wantHistoryFile:      "/var/tmp/hist",
			wantSourceIdentifier: "File: /var/tmp/hist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shellEnv)

			provider := NewHistoryProvider(tt.mockFileFinder)
			hp, ok := provider.(*HistoryProvider)
			if !ok {
				t.Fatalf("NewHistoryProvider() did not return a *HistoryProvider, got %T", provider)
			}
			if hp.Shell != tt.wantShell {
				t.Errorf("Shell = %q, want %q", hp.Shell, tt.wantShell)
			}
			if hp.HistoryFile != tt.wantHistoryFile {
				t.Errorf("HistoryFile = %q, want %q", hp.HistoryFile, tt.wantHistoryFile)
			}
			if got := hp.GetSourceIdentifier(); got != tt.wantSourceIdentifier {
				t.Errorf("GetSourceIdentifier() = %q, want %q", got, tt.wantSourceIdentifier)
			}
		})
	}
}

func TestNewHistoryProvider_NilFinderPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewHistoryProvider did not panic with nil fileFinder")
		}
	}()
	_ = NewHistoryProvider(nil)
}

func TestHistoryProvider_GetSourceIdentifier(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	absPath := filepath.Join(homeDir, ".zsh_history")

	tests := []struct {
		name           string
		provider       *HistoryProvider
		wantIdentifier string
	}{
		{
			name: "Identifier set during creation",
			provider: &HistoryProvider{
				HistoryFile:      absPath,
				Shell:            "zsh",
				sourceIdentifier: "File: ~/.zsh_history",
			},
			wantIdentifier: "File: ~/.zsh_history",
		},
		{
			name: "Fallback: sourceIdentifier empty, HistoryFile set",
			provider: &HistoryProvider{
				HistoryFile: absPath,
				Shell:       "zsh",
			},
			wantIdentifier: fmt.Sprintf("File: %s", filepath.Join("~", ".zsh_history")),
		},
		{
			name: "Fallback: sourceIdentifier empty, HistoryFile empty",
			provider: &HistoryProvider{
				Shell: "fish",
			},
			wantIdentifier: "Shell: fish (history file path unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.GetSourceIdentifier(); got != tt.wantIdentifier {
				t.Errorf("GetSourceIdentifier() = %q, want %q", got, tt.wantIdentifier)
			}
		})
	}
}

func TestHistoryProvider_GetRecentEntries(t *testing.T) {
	t.Setenv("HISTSIZE", "")
	historyFilePath := filepath.Join(t.TempDir(), ".test_history")
	manageTestFile(t, historyFilePath, []byte("ls -l\n: 1700000000:0;sleep 10 &\n\ngit status\n"))

	tests := []struct {
		name              string
		provider          *HistoryProvider
		scanLimit         int
		want              []string
		wantErrorContains string
	}{
		{
			name:              "HistoryFile not set on provider",
			provider:          &HistoryProvider{Shell: "zsh"},
			scanLimit:         10,
			wantErrorContains: "history file not found or configured for shell zsh",
		},
		{
			name:      "all entries",
			provider:  &HistoryProvider{Shell: "zsh", HistoryFile: historyFilePath},
			scanLimit: 10,
			want:      []string{"ls -l", "sleep 10 &", "git status"},
		},
		{
			name:      "limited to the most recent",
			provider:  &HistoryProvider{Shell: "zsh", HistoryFile: historyFilePath},
			scanLimit: 2,
			want:      []string{"sleep 10 &", "git status"},
		},
		{
			name:              "missing file",
			provider:          &HistoryProvider{Shell: "bash", HistoryFile: historyFilePath + ".missing"},
			scanLimit:         10,
			wantErrorContains: "opening history file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.provider.GetRecentEntries(tt.scanLimit)
			if tt.wantErrorContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Fatalf("GetRecentEntries() error = %v, want error containing %q", err, tt.wantErrorContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetRecentEntries() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetRecentEntries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHistoryProvider_GetHistoryFilePath(t *testing.T) {
	hp := &HistoryProvider{HistoryFile: "/home/user/.zsh_history"}
	if got := hp.GetHistoryFilePath(); got != "/home/user/.zsh_history" {
		t.Errorf("GetHistoryFilePath() = %q", got)
	}
	if got := (&HistoryProvider{}).GetHistoryFilePath(); got != "" {
		t.Errorf("GetHistoryFilePath() = %q, want empty", got)
	}
}
