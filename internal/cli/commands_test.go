package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/premisgen/internal/assembler"
	"github.com/vvka-141/premisgen/internal/services"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetGenerateFlags()
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSIP creates a small SIP tree and returns its root.
func writeSIP(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "CNR-2025-0001")
	files := map[string]string{
		"metadata.xml":                     "<metadata/>",
		"representation/rep1/data/a.pdf":   "%PDF-1.4 abc",
		"representation/rep2/data/a_c.pdf": "%PDF-1.4 abc converted",
		"schema/case.xsd":                  "<xs:schema/>",
		"notes.txt":                        "not described",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func TestGenerateCmd_ArgsValidation(t *testing.T) {
	err := generateCmd.Args(generateCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitUsageError, premisgen.ExitCodeForError(err))

	err = generateCmd.Args(generateCmd, []string{"a", "b", "c"})
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitUsageError, premisgen.ExitCodeForError(err))
}

func TestGenerate_WritesRecordIntoSourceRoot(t *testing.T) {
	root := writeSIP(t)

	_, stderr, err := executeCommand(t, "generate", root)
	require.NoError(t, err)

	out := filepath.Join(root, premisgen.DefaultOutputName)
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, "<premis:premis ")
	assert.Contains(t, doc, "CNR-2025-0001")
	assert.Contains(t, doc, "representation/rep1/data/a.pdf")
	assert.Contains(t, doc, "ingestion")
	assert.NotContains(t, doc, "notes.txt")

	assert.Contains(t, stderr, "PREMIS record CNR-2025-0001")
	assert.Contains(t, stderr, "Wrote "+out)
}

func TestGenerate_RerunDoesNotDescribeItsOwnOutput(t *testing.T) {
	root := writeSIP(t)

	_, _, err := executeCommand(t, "generate", root)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(root, premisgen.DefaultOutputName))
	require.NoError(t, err)

	_, _, err = executeCommand(t, "generate", root)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(root, premisgen.DefaultOutputName))
	require.NoError(t, err)

	assert.Equal(t, strings.Count(string(first), "<premis:object "), strings.Count(string(second), "<premis:object "))
}

func TestGenerate_ExplicitOutputAndSIPID(t *testing.T) {
	root := writeSIP(t)
	out := filepath.Join(t.TempDir(), "records", "rec.xml")

	_, _, err := executeCommand(t, "generate", root, out, "--sip-id", "CNR-9", "--no-events")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CNR-9")
	assert.NotContains(t, string(data), "ingestion")
	assert.NoFileExists(t, filepath.Join(root, premisgen.DefaultOutputName))
}

func TestGenerate_DryRunPrintsRecord(t *testing.T) {
	root := writeSIP(t)

	stdout, stderr, err := executeCommand(t, "generate", root, "--dry-run")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<?xml"))
	assert.Contains(t, stdout, "</premis:premis>")
	assert.NotContains(t, stderr, "Wrote")
	assert.NoFileExists(t, filepath.Join(root, premisgen.DefaultOutputName))
}

func TestGenerate_ProjectConfig(t *testing.T) {
	root := writeSIP(t)
	yaml := `sip_id: CNR-FROM-CONFIG
output: out/record.xml
depositor:
  id: clerk@court.example
  name: Registry Clerk
events:
  ingestion: false
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "premisgen.yaml"), []byte(yaml), 0644))

	_, _, err := executeCommand(t, "generate", root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "out", "record.xml"))
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "CNR-FROM-CONFIG")
	assert.Contains(t, doc, "Registry Clerk")
	assert.Contains(t, doc, "clerk@court.example")
	assert.NotContains(t, doc, "ingestion")
}

func TestGenerate_FlagsOverrideConfig(t *testing.T) {
	root := writeSIP(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "premisgen.yaml"), []byte("sip_id: CNR-FROM-CONFIG\n"), 0644))

	stdout, _, err := executeCommand(t, "generate", root, "--dry-run", "--sip-id", "CNR-FROM-FLAG")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CNR-FROM-FLAG")
	assert.NotContains(t, stdout, "CNR-FROM-CONFIG")
}

func TestGenerate_MissingSourceRoot(t *testing.T) {
	_, _, err := executeCommand(t, "generate", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitSourceMissing, premisgen.ExitCodeForError(err))
}

func TestGenerate_SourceRootIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sip.zip")
	require.NoError(t, os.WriteFile(file, []byte("zip"), 0644))

	_, _, err := executeCommand(t, "generate", file)
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitSourceMissing, premisgen.ExitCodeForError(err))
}

func TestGenerate_MissingExplicitConfig(t *testing.T) {
	root := writeSIP(t)

	_, _, err := executeCommand(t, "generate", root, "--config", filepath.Join(root, "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitConfigError, premisgen.ExitCodeForError(err))
}

func TestGenerate_InvalidLogFormat(t *testing.T) {
	root := writeSIP(t)

	_, _, err := executeCommand(t, "generate", root, "--log-format", "xml")
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitUsageError, premisgen.ExitCodeForError(err))
}

func TestGenerate_JSONLogs(t *testing.T) {
	root := writeSIP(t)

	_, stderr, err := executeCommand(t, "generate", root, "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"level":"info"`)
	assert.Contains(t, stderr, `"msg":"Scanning `)
	assert.NotContains(t, stderr, "PREMIS record")
}

func TestInspect_PrintsClassification(t *testing.T) {
	root := writeSIP(t)

	stdout, _, err := executeCommand(t, "inspect", root)
	require.NoError(t, err)

	assert.Contains(t, stdout, "4 classified file(s)")
	assert.Contains(t, stdout, "representation/rep1/data/a.pdf")
	assert.Contains(t, stdout, "schema/case.xsd")
	assert.Contains(t, stdout, "notes.txt matches no role")
	assert.Contains(t, stdout, "1 file(s) skipped")

	metadata := strings.Index(stdout, "metadata.xml")
	schema := strings.Index(stdout, "schema/case.xsd")
	assert.True(t, metadata >= 0 && metadata < schema, "metadata must be listed before schema files")
}

func TestInspect_MissingSourceRoot(t *testing.T) {
	_, _, err := executeCommand(t, "inspect", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, premisgen.ExitSourceMissing, premisgen.ExitCodeForError(err))
}

func TestBuildGenerateConfig_Defaults(t *testing.T) {
	resetGenerateFlags()
	root := filepath.Join(t.TempDir(), "CNR-7")
	require.NoError(t, os.MkdirAll(root, 0755))

	cfg, err := buildGenerateConfig([]string{root}, false)
	require.NoError(t, err)

	assert.Equal(t, "CNR-7", cfg.SIPID)
	assert.Equal(t, filepath.Join(root, premisgen.DefaultOutputName), cfg.OutputPath)
	assert.Equal(t, premisgen.DefaultSystemAgent, cfg.SystemAgent)
	assert.True(t, cfg.IngestionEvent)
	assert.NoError(t, cfg.Validate())
}

func TestSummaryReport(t *testing.T) {
	cfg := premisgen.GenerateConfig{SIPID: "CNR-1", SourcePath: "/sip", DryRun: true}
	result := &services.GenerateResult{
		Scan: premisgen.ScanResult{Skipped: []string{"notes.txt"}},
		Record: &assembler.Result{
			Summary: assembler.Summary{Files: 3, Agents: 2, Rights: 1, Relationships: 4},
			Phases: []assembler.PhaseResult{
				{Phase: assembler.PhaseObjects, Warnings: []string{"size dropped"}},
			},
		},
	}

	report := summaryReport(cfg, result)
	plain := report.Render(false)

	assert.Contains(t, plain, "PREMIS record CNR-1")
	assert.Contains(t, plain, "Files:          3")
	assert.Contains(t, plain, "warning: objects: size dropped")
	assert.Empty(t, report.Footer)
}
