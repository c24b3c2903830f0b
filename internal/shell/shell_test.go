package shell

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/vsokolov/departures/internal/record"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// runScript feeds a scripted session to a shell over the given store
// and returns what was written to out and errOut.
func runScript(t *testing.T, kind record.Kind, store *record.Store, script string) (out, errOut string) {
	t.Helper()
	var o, e bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	sh := New(kind, store, strings.NewReader(script), &o, &e, log)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return o.String(), e.String()
}

func TestRun_AddListSelect(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	out, errOut := runScript(t, record.FlightKind, store, strings.Join([]string{
		"add", "Moscow", "101", "14:30",
		"add", "Kazan", "102", "09:15",
		"list",
		"select 101",
		"select 999",
		"exit",
	}, "\n")+"\n")

	if store.Len() != 2 {
		t.Fatalf("store has %d records, want 2", store.Len())
	}
	if store.Records()[0].Name != "Kazan" {
		t.Errorf("first record = %s, want Kazan (sorted)", store.Records()[0].Name)
	}

	if !strings.Contains(out, "|    1 | Kazan") {
		t.Errorf("list output missing first table row:\n%s", out)
	}
	if !strings.Contains(out, "   1: Moscow") {
		t.Errorf("select output missing match line:\n%s", out)
	}
	if !strings.Contains(out, "No flights found with number 999") {
		t.Errorf("missing not-found message:\n%s", out)
	}
	if errOut != "" {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestRun_BadTimeLeavesStoreUnchanged(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	_, errOut := runScript(t, record.FlightKind, store,
		"add\nMoscow\n101\nnoon\nexit\n")

	if store.Len() != 0 {
		t.Errorf("store has %d records after bad time, want 0", store.Len())
	}
	if !strings.Contains(errOut, "noon") {
		t.Errorf("error output %q does not name the bad time", errOut)
	}
}

func TestRun_UnknownCommandContinues(t *testing.T) {
	store := record.NewStore(record.TrainKind)
	out, errOut := runScript(t, record.TrainKind, store,
		"frobnicate\nlist\nexit\n")

	if !strings.Contains(errOut, "frobnicate -> unknown command") {
		t.Errorf("error output = %q, want unknown command report", errOut)
	}
	if !strings.Contains(out, "+---") {
		t.Errorf("list after unknown command produced no table:\n%s", out)
	}
}

func TestRun_EmptyLineIsUnknown(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	_, errOut := runScript(t, record.FlightKind, store, "\nexit\n")

	if !strings.Contains(errOut, "unknown command") {
		t.Errorf("error output = %q, want unknown command report", errOut)
	}
}

func TestRun_BareSelectIsUnknown(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	_, errOut := runScript(t, record.FlightKind, store, "select\nexit\n")

	if !strings.Contains(errOut, "unknown command") {
		t.Errorf("error output = %q, want unknown command report", errOut)
	}
}

func TestRun_CommandCaseInsensitive(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	out, _ := runScript(t, record.FlightKind, store, "LIST\nExit\n")

	if !strings.Contains(out, "+---") {
		t.Errorf("LIST produced no table:\n%s", out)
	}
}

func TestRun_Help(t *testing.T) {
	store := record.NewStore(record.TrainKind)
	out, _ := runScript(t, record.TrainKind, store, "help\nexit\n")

	for _, cmd := range []string{"add", "list", "select", "load", "save", "exit"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help output missing %q:\n%s", cmd, out)
		}
	}
	if !strings.Contains(out, "train") {
		t.Errorf("help output not worded for trains:\n%s", out)
	}
}

func TestRun_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.xml")

	store := record.NewStore(record.FlightKind)
	_, errOut := runScript(t, record.FlightKind, store, strings.Join([]string{
		"add", "Moscow", "101", "14:30",
		"add", "Kazan", "102", "09:15",
		"save " + path,
		"exit",
	}, "\n")+"\n")
	if errOut != "" {
		t.Fatalf("save session error output: %q", errOut)
	}

	loaded := record.NewStore(record.FlightKind)
	_, errOut = runScript(t, record.FlightKind, loaded, "load "+path+"\nexit\n")
	if errOut != "" {
		t.Fatalf("load session error output: %q", errOut)
	}

	if loaded.Len() != 2 {
		t.Fatalf("loaded store has %d records, want 2", loaded.Len())
	}
	got := loaded.Records()
	if got[0].Name != "Kazan" || got[0].Time != "09:15" {
		t.Errorf("first loaded record = %+v, want Kazan at 09:15", got[0])
	}
}

func TestRun_LoadFailureKeepsStore(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	if err := store.Add("Moscow", "101", "14:30"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	_, errOut := runScript(t, record.FlightKind, store,
		"load "+filepath.Join(t.TempDir(), "nope.xml")+"\nexit\n")

	if errOut == "" {
		t.Error("missing error report for failed load")
	}
	if store.Len() != 1 {
		t.Errorf("store has %d records after failed load, want 1", store.Len())
	}
}

func TestRun_EndOfInputStopsLoop(t *testing.T) {
	store := record.NewStore(record.FlightKind)
	// No exit command; the loop must stop cleanly at end of input.
	runScript(t, record.FlightKind, store, "list\n")
}
