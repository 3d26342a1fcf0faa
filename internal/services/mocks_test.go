package services

import (
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

type mockFileScanner struct {
	scanResult  premisgen.ScanResult
	scanErr     error
	validateErr error
	excluded    []string
}

func (m *mockFileScanner) ScanDirectory(_ string, excludePaths ...string) (premisgen.ScanResult, error) {
	m.excluded = excludePaths
	return m.scanResult, m.scanErr
}

func (m *mockFileScanner) ValidateSourceRoot(_ string) error {
	return m.validateErr
}

type mockDetector struct {
	fingerprints map[string]premisgen.Fingerprint
	err          error
	calls        int
}

func (m *mockDetector) Detect(path string) (premisgen.Fingerprint, error) {
	m.calls++
	if m.err != nil {
		return premisgen.Fingerprint{}, m.err
	}
	return m.fingerprints[path], nil
}
