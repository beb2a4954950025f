package mob

import (
	"encoding/hex"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/arloliu/eikit/format"
	"github.com/arloliu/eikit/internal/options"
)

// DumpConfig configures Dump.
type DumpConfig struct {
	indent    int
	rawLeaves bool
}

// DumpOption is a functional option for Dump.
type DumpOption = options.Option[*DumpConfig]

// WithIndent indents nested JSON by step spaces. 0 writes compact JSON.
func WithIndent(step int) DumpOption {
	return options.New(func(c *DumpConfig) error {
		if step < 0 {
			return fmt.Errorf("indent %d: negative", step)
		}
		c.indent = step

		return nil
	})
}

// WithRawLeaves includes the hex payload of decoded leaves next to their value.
// Opaque leaves always carry their hex payload.
func WithRawLeaves(enabled bool) DumpOption {
	return options.NoError(func(c *DumpConfig) {
		c.rawLeaves = enabled
	})
}

// DumpNode is the JSON view of one section.
type DumpNode struct {
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	Type     string     `json:"type"`
	Size     int        `json:"size"`
	Value    any        `json:"value,omitempty"`
	Raw      string     `json:"raw,omitempty"`
	Error    string     `json:"error,omitempty"`
	Children []DumpNode `json:"children,omitempty"`
}

// Dump writes the subtree of n as JSON to w.
func Dump(w io.Writer, n Node, opts ...DumpOption) error {
	cfg := &DumpConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	view, err := cfg.view(n)
	if err != nil {
		return err
	}

	api := jsoniter.Config{
		IndentionStep:          cfg.indent,
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: false,
		CaseSensitive:          true,
	}.Froze()

	return api.NewEncoder(w).Encode(view)
}

func (c *DumpConfig) view(n Node) (DumpNode, error) {
	typ := n.Type()
	v := DumpNode{
		ID:   fmt.Sprintf("0x%08X", uint32(n.ID())),
		Type: typ.String(),
		Size: n.Size(),
	}
	if n.ID().Known() {
		v.Name = n.ID().String()
	}

	if typ == format.SectionRecord {
		children, err := n.Children()
		if err != nil {
			return v, err
		}
		v.Children = make([]DumpNode, 0, len(children))
		for _, child := range children {
			cv, err := c.view(child)
			if err != nil {
				return v, err
			}
			v.Children = append(v.Children, cv)
		}

		return v, nil
	}

	value, err := leafValue(n, typ)
	if err != nil {
		v.Error = err.Error()
		value = nil
	}
	v.Value = value

	if value == nil || c.rawLeaves {
		data, _ := n.Data()
		v.Raw = hex.EncodeToString(data)
	}

	return v, nil
}

// leafValue decodes the payload of well-known leaf types. Opaque types yield nil.
func leafValue(n Node, typ format.SectionType) (any, error) {
	switch typ {
	case format.SectionString:
		return n.AsString()
	case format.SectionStringEncrypted:
		return n.AsEncryptedString()
	case format.SectionByte:
		return n.AsByte()
	case format.SectionDword:
		return n.AsDword()
	case format.SectionFloat:
		return n.AsFloat()
	case format.SectionPlot:
		return n.AsPlot()
	case format.SectionQuaternion:
		return n.AsQuaternion()
	default:
		return nil, nil
	}
}
