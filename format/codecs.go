package format

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/corekit/kv"
)

// xmlDeclaration is the document prolog written when OptDeclaration is set.
const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

func encodeJSON(data map[string]any, opts Options) (string, error) {
	indent := intOption(opts, OptIndent, 4)

	var (
		raw []byte
		err error
	)
	if indent > 0 {
		raw, err = json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	} else {
		raw, err = json.Marshal(data)
	}
	if err != nil {
		return "", errors.Wrap(err, "marshaling JSON")
	}
	return string(raw), nil
}

func decodeJSON(text string, _ Options) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, errors.Wrap(err, "unmarshaling JSON")
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

func encodeYAML(data map[string]any, opts Options) (string, error) {
	indent := intOption(opts, OptIndent, 4)
	if indent <= 0 {
		indent = 4
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(data); err != nil {
		enc.Close()
		return "", errors.Wrap(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "closing YAML encoder")
	}
	return buf.String(), nil
}

func decodeYAML(text string, _ Options) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal([]byte(text), &data); err != nil {
		return nil, errors.Wrap(err, "unmarshaling YAML")
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

func encodeTOML(data map[string]any, _ Options) (string, error) {
	raw, err := toml.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "marshaling TOML")
	}
	return string(raw), nil
}

func decodeTOML(text string, _ Options) (map[string]any, error) {
	var data map[string]any
	if err := toml.Unmarshal([]byte(text), &data); err != nil {
		return nil, errors.Wrap(err, "unmarshaling TOML")
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

func encodeXML(data map[string]any, opts Options) (string, error) {
	indent := intOption(opts, OptIndent, 4)
	root := stringOption(opts, OptRoot, "config")

	raw, err := mxj.Map(data).XmlIndent("", strings.Repeat(" ", indent), root)
	if err != nil {
		return "", errors.Wrap(err, "marshaling XML")
	}

	text := string(raw)
	if boolOption(opts, OptDeclaration, true) {
		text = xmlDeclaration + "\n" + text
	}
	return text, nil
}

func decodeXML(text string, opts Options) (map[string]any, error) {
	m, err := mxj.NewMapXml([]byte(text))
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling XML")
	}

	// Encoding wraps the mapping in a root element; peel it off again when
	// the document's single top-level element matches the configured root.
	root := stringOption(opts, OptRoot, "config")
	if len(m) == 1 {
		if inner, ok := m[root].(map[string]any); ok {
			return inner, nil
		}
	}
	return map[string]any(m), nil
}

func encodeKV(data map[string]any, opts Options) (string, error) {
	return kv.Marshal(data, boolOption(opts, OptSpaced, false))
}

func decodeKV(text string, opts Options) (map[string]any, error) {
	pairs := kv.Unmarshal(text, stringOption(opts, OptComment, ""))
	data := make(map[string]any, len(pairs))
	for key, value := range pairs {
		data[key] = value
	}
	return data, nil
}
