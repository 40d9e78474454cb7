package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/auditlog"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "tally-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "tally")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/tally")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runTally(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func initLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runTally(t, "init", dir, "--name", "Test User")
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initLedger(t)

	for _, d := range []string{"data", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runTally(t, "init", dir, "--name", "Test User", "--currency", "USD")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tally.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test User")
	assert.Contains(t, contents, "currency: USD")
	assert.Contains(t, contents, "driver: file")
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runTally(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestInit_Git(t *testing.T) {
	dir := t.TempDir()
	_, err := runTally(t, "init", dir, "--name", "Test User", "--git")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")
}

func TestAccountList_SeedsSampleData(t *testing.T) {
	dir := initLedger(t)

	out, err := runTally(t, "account", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "HDFC Bank")
	assert.Contains(t, out, "ICICI Credit Card")
	assert.Contains(t, out, "outstanding 15000.00")
}

func TestAccountAdd(t *testing.T) {
	dir := initLedger(t)

	out, err := runTally(t, "account", "add", "--dir", dir,
		"--name", "Savings", "--type", "Bank", "--opening", "7000")
	require.NoError(t, err)
	assert.Contains(t, out, "Added account Savings")

	out, err = runTally(t, "account", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Savings")
	assert.Contains(t, out, "7000.00")
}

func TestTxAdd_UpdatesBalance(t *testing.T) {
	dir := initLedger(t)

	// Seed bank balance is 67500; a 500 expense brings it to 67000.
	_, err := runTally(t, "tx", "add", "--dir", dir,
		"--type", "expense", "--amount", "500", "--account", "1",
		"--category", "Food", "--date", "2023-06-01")
	require.NoError(t, err)

	out, err := runTally(t, "account", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "67000.00")
}

func TestTx_WritesAuditLog(t *testing.T) {
	dir := initLedger(t)

	_, err := runTally(t, "tx", "add", "--dir", dir,
		"--type", "expense", "--amount", "100", "--account", "1",
		"--category", "Food", "--date", "2023-06-01")
	require.NoError(t, err)

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "tx.add", entries[len(entries)-1].Action)
}

func TestTxInvest_UpdatesBalance(t *testing.T) {
	dir := initLedger(t)

	// Buy into the seeded mutual fund: 67500 - 2500.
	_, err := runTally(t, "tx", "invest", "--dir", dir,
		"--action", "buy", "--amount", "2500", "--account", "1", "--asset", "1",
		"--date", "2023-06-01")
	require.NoError(t, err)

	out, err := runTally(t, "account", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "65000.00")
}

func TestReset_RequiresConfirmation(t *testing.T) {
	dir := initLedger(t)

	_, err := runTally(t, "reset", "--dir", dir)
	require.Error(t, err, "reset without --yes should fail")

	out, err := runTally(t, "reset", "--dir", dir, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	out, err = runTally(t, "account", "list", "--dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "HDFC Bank")
}

func TestCommands_FailOutsideLedgerDir(t *testing.T) {
	out, err := runTally(t, "account", "list", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, "not a tally directory")
}

func TestReportMonthly(t *testing.T) {
	dir := initLedger(t)

	out, err := runTally(t, "report", "monthly", "--dir", dir, "--month", "2023-05")
	require.NoError(t, err)
	assert.Contains(t, out, "25000.00")
	assert.Contains(t, out, "20000.00")
}

func TestImport(t *testing.T) {
	dir := initLedger(t)

	csvPath := filepath.Join(dir, "statement.csv")
	csv := "date,description,amount,category\n" +
		"2023-06-01,Grocery store,-250,Food\n" +
		"2023-06-02,Refund,100,Other\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	out, err := runTally(t, "import", "--dir", dir,
		"--file", csvPath, "--account", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 transactions")

	// 67500 - 250 + 100.
	out, err = runTally(t, "account", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "67350.00")
}
