package finding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghannotate/pkg/apperr"
	"github.com/suzuki-shunsuke/ghannotate/pkg/sarif"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	FormatAuto  = "auto"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatSARIF = "sarif"
)

// DetectFormat resolves the input format.
// If format is empty or auto, it is decided by the file extension.
func DetectFormat(path, format string) (string, error) {
	switch format {
	case FormatJSON, FormatYAML, FormatSARIF:
		return format, nil
	case "", FormatAuto:
	default:
		return "", fmt.Errorf("format must be one of auto, json, yaml, and sarif: %s", format)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sarif":
		return FormatSARIF, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read reads findings from a file.
// A missing file is classified as apperr.KindMissingFile and a file that
// can't be decoded as apperr.KindMalformedInput.
func (r *Reader) Read(path, format string) ([]*Finding, error) {
	format, err := DetectFormat(path, format)
	if err != nil {
		return nil, apperr.New(apperr.KindConfig, "", err)
	}
	f, err := r.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.New(apperr.KindMissingFile, "the input file isn't found", logerr.WithFields(err, logrus.Fields{
				"input": path,
			}))
		}
		return nil, fmt.Errorf("open the input file: %w", err)
	}
	defer f.Close()
	findings, err := decode(f, format)
	if err != nil {
		return nil, apperr.New(apperr.KindMalformedInput, "decode the input file as "+format, logerr.WithFields(err, logrus.Fields{
			"input": path,
		}))
	}
	return findings, nil
}

func decode(r io.Reader, format string) ([]*Finding, error) {
	switch format {
	case FormatSARIF:
		log, err := sarif.Read(r)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		return FromSARIF(log), nil
	case FormatYAML:
		findings := []*Finding{}
		if err := yaml.NewDecoder(r).Decode(&findings); err != nil {
			if errors.Is(err, io.EOF) {
				// The decoder may reset findings to nil.
				return []*Finding{}, nil
			}
			return nil, fmt.Errorf("decode findings as YAML: %w", err)
		}
		return compact(findings), nil
	default:
		findings := []*Finding{}
		if err := json.NewDecoder(r).Decode(&findings); err != nil {
			return nil, fmt.Errorf("decode findings as JSON: %w", err)
		}
		return compact(findings), nil
	}
}

// compact drops null elements. A `null` document decodes to a nil slice,
// which is returned as an empty one.
func compact(findings []*Finding) []*Finding {
	arr := make([]*Finding, 0, len(findings))
	for _, f := range findings {
		if f != nil {
			arr = append(arr, f)
		}
	}
	return arr
}
