package dryrun

import "github.com/arthur-debert/gendry/pkg/types"

// Processor returns m as a types.TemplateProcessor
func (m *Manager) Processor() types.TemplateProcessor {
	return processor{m: m}
}

type processor struct {
	m *Manager
}

var _ types.TemplateProcessor = processor{}

func (p processor) Write(data map[string]any, templateRef, target string) (types.Target, error) {
	return p.m.Write(data, templateRef, target)
}

func (p processor) WriteToFile(path string, contents []byte) (types.Target, error) {
	return p.m.WriteToFile(path, contents)
}

func (p processor) Skip(path, context string) error { return p.m.Skip(path, context) }

func (p processor) Ignore(path, context string) { p.m.Ignore(path, context) }

func (p processor) Error(path, context string) { p.m.Error(path, context) }
