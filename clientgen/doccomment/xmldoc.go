package doccomment

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

type xmlDoc struct {
	Assembly string      `xml:"assembly>name"`
	Members  []xmlMember `xml:"members>member"`
}

type xmlMember struct {
	Name    string   `xml:"name,attr"`
	Summary innerXML `xml:"summary"`
}

// innerXML keeps the raw content so inline tags like <see cref="..."/> can be
// flattened to their referenced name.
type innerXML struct {
	Inner string `xml:",innerxml"`
}

// ParseXML reads a .NET XML documentation file.
func ParseXML(r io.Reader) (Map, error) {
	var doc xmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode XML documentation")
	}
	m := make(Map, len(doc.Members))
	for _, mem := range doc.Members {
		if mem.Name == "" {
			continue
		}
		d := Doc{Summary: TrimLines(flatten(mem.Summary.Inner))}
		if d.IsEmpty() {
			continue
		}
		m[mem.Name] = d
	}
	logger.Debugw("loaded XML documentation",
		"assembly", doc.Assembly,
		logger.FieldCount, len(m))
	return m, nil
}

// LoadXMLFile reads the XML documentation file at path.
func LoadXMLFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "documentation file %s", path)
		}
		return nil, errors.Wrapf(err, "failed to open documentation file %s", path)
	}
	defer f.Close()

	m, err := ParseXML(f)
	if err != nil {
		return nil, errors.Wrapf(err, "documentation file %s", path)
	}
	return m, nil
}

// flatten turns inline markup into plain text: <see cref="T:A.B"/> becomes
// "A.B", <paramref name="x"/> becomes "x", other tags are dropped and their
// text kept.
func flatten(inner string) string {
	if !strings.Contains(inner, "<") {
		return unescape(inner)
	}
	var sb strings.Builder
	dec := xml.NewDecoder(strings.NewReader("<x>" + inner + "</x>"))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			for _, a := range t.Attr {
				switch a.Name.Local {
				case "cref":
					sb.WriteString(stripKeyPrefix(a.Value))
				case "name", "langword", "href":
					sb.WriteString(a.Value)
				}
			}
		}
	}
	return sb.String()
}

func stripKeyPrefix(cref string) string {
	if len(cref) > 2 && cref[1] == ':' {
		return cref[2:]
	}
	return cref
}

func unescape(s string) string {
	r := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&", "&quot;", `"`, "&apos;", "'")
	return r.Replace(s)
}
