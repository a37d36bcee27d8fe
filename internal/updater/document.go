package updater

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	documentReadErrorTemplateConstant   = "unable to read %s: %w"
	documentParseErrorTemplateConstant  = "unable to parse %s: %w"
	documentShapeErrorTemplateConstant  = "top level of %s is not a mapping"
	documentWriteErrorTemplateConstant  = "unable to write %s: %w"
	documentEncodeErrorTemplateConstant = "unable to encode %s: %w"
	yamlEncoderIndentConstant           = 2
	yamlStringTagConstant               = "!!str"
	yamlNullTagConstant                 = "!!null"
	fallbackFilePermissionsConstant     = fs.FileMode(0o644)
)

// ConfigurationDocument is a parsed YAML file whose comments and formatting
// survive partial edits. Only nodes touched through SetStringValue change on
// rewrite.
type ConfigurationDocument struct {
	filePath string
	fileMode fs.FileMode
	root     *yaml.Node
	mapping  *yaml.Node
}

// LoadConfigurationDocument parses the YAML file at filePath. An empty or
// null document is treated as an empty mapping.
func LoadConfigurationDocument(filePath string) (*ConfigurationDocument, error) {
	fileContents, readError := os.ReadFile(filePath)
	if readError != nil {
		return nil, fmt.Errorf(documentReadErrorTemplateConstant, filePath, readError)
	}

	fileMode := fallbackFilePermissionsConstant
	if fileInfo, statError := os.Stat(filePath); statError == nil {
		fileMode = fileInfo.Mode().Perm()
	}

	var rootNode yaml.Node
	if parseError := yaml.Unmarshal(fileContents, &rootNode); parseError != nil {
		return nil, fmt.Errorf(documentParseErrorTemplateConstant, filePath, parseError)
	}

	mappingNode, mappingError := resolveMappingNode(filePath, &rootNode)
	if mappingError != nil {
		return nil, mappingError
	}

	return &ConfigurationDocument{
		filePath: filePath,
		fileMode: fileMode,
		root:     &rootNode,
		mapping:  mappingNode,
	}, nil
}

// resolveMappingNode locates the top-level mapping, synthesizing an empty one
// for empty and null documents.
func resolveMappingNode(filePath string, rootNode *yaml.Node) (*yaml.Node, error) {
	emptyMapping := func() *yaml.Node {
		mappingNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		rootNode.Kind = yaml.DocumentNode
		rootNode.Content = []*yaml.Node{mappingNode}
		return mappingNode
	}

	if rootNode.Kind == 0 || len(rootNode.Content) == 0 {
		return emptyMapping(), nil
	}

	documentContent := rootNode.Content[0]
	if documentContent.Kind == yaml.ScalarNode && documentContent.Tag == yamlNullTagConstant {
		return emptyMapping(), nil
	}
	if documentContent.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(documentShapeErrorTemplateConstant, filePath)
	}
	return documentContent, nil
}

// SetStringValue updates or adds a top-level key with a single-quoted scalar
// value. The value is compared to the current one as a string; equal values
// leave the document untouched. Missing keys are only added when addMissing
// is true. The return value reports whether the document changed.
func (document *ConfigurationDocument) SetStringValue(key string, value string, addMissing bool) bool {
	mappingContent := document.mapping.Content
	for pairIndex := 0; pairIndex+1 < len(mappingContent); pairIndex += 2 {
		keyNode := mappingContent[pairIndex]
		valueNode := mappingContent[pairIndex+1]
		if keyNode.Value != key {
			continue
		}
		if valueNode.Kind == yaml.ScalarNode && valueNode.Value == value {
			return false
		}
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = yamlStringTagConstant
		valueNode.Style = yaml.SingleQuotedStyle
		valueNode.Value = value
		valueNode.Content = nil
		return true
	}

	if !addMissing {
		return false
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStringTagConstant, Value: key}
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStringTagConstant, Style: yaml.SingleQuotedStyle, Value: value}
	document.mapping.Content = append(document.mapping.Content, keyNode, valueNode)
	return true
}

// Save rewrites the backing file, preserving its permissions.
func (document *ConfigurationDocument) Save() error {
	var encodedDocument bytes.Buffer
	yamlEncoder := yaml.NewEncoder(&encodedDocument)
	yamlEncoder.SetIndent(yamlEncoderIndentConstant)
	if encodeError := yamlEncoder.Encode(document.root); encodeError != nil {
		return fmt.Errorf(documentEncodeErrorTemplateConstant, document.filePath, encodeError)
	}
	if closeError := yamlEncoder.Close(); closeError != nil {
		return fmt.Errorf(documentEncodeErrorTemplateConstant, document.filePath, closeError)
	}

	if writeError := os.WriteFile(document.filePath, encodedDocument.Bytes(), document.fileMode); writeError != nil {
		return fmt.Errorf(documentWriteErrorTemplateConstant, document.filePath, writeError)
	}
	return nil
}
