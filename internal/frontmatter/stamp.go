package frontmatter

import (
	"maps"
	"strings"

	"github.com/google/uuid"
	"github.com/inful/mdfp"
)

// UIDField is the frontmatter key holding a post's stable identifier.
const UIDField = "uid"

// Stamp returns a copy of fields with a uid (generated only when missing) and
// a content fingerprint covering the remaining fields and body.
func Stamp(fields map[string]any, body []byte) (map[string]any, error) {
	out := make(map[string]any, len(fields)+2)
	maps.Copy(out, fields)

	if _, ok := out[UIDField]; !ok {
		out[UIDField] = uuid.NewString()
	}

	fp, err := Fingerprint(out, body)
	if err != nil {
		return nil, err
	}
	out[mdfp.FingerprintField] = fp
	return out, nil
}

// Fingerprint hashes fields (minus uid and fingerprint) together with body.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == UIDField || k == mdfp.FingerprintField {
			continue
		}
		hashed[k] = v
	}

	serialized, err := SerializeYAML(hashed)
	if err != nil {
		return "", err
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(serialized), "\n"), string(body)), nil
}

// Attach stamps fields and prefixes body with the resulting frontmatter.
func Attach(fields map[string]any, body []byte) ([]byte, error) {
	stamped, err := Stamp(fields, body)
	if err != nil {
		return nil, err
	}
	fm, err := SerializeYAML(stamped)
	if err != nil {
		return nil, err
	}
	return Join(fm, body), nil
}

// Verify reports whether a document's stored fingerprint matches its content.
// Documents without frontmatter or without a fingerprint report false.
func Verify(content []byte) (bool, error) {
	fm, body, had, err := Split(content)
	if err != nil || !had {
		return false, err
	}
	fields, err := ParseYAML(fm)
	if err != nil {
		return false, err
	}
	stored, ok := fields[mdfp.FingerprintField].(string)
	if !ok {
		return false, nil
	}
	want, err := Fingerprint(fields, body)
	if err != nil {
		return false, err
	}
	return stored == want, nil
}
