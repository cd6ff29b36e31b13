package store

import (
	"strings"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
)

type DestinationKind string

const (
	LocalDestination DestinationKind = "file"
	DBFSDestination  DestinationKind = "dbfs"
	BlobDestination  DestinationKind = "az"
)

type Destination struct {
	Kind DestinationKind
	// Path is scheme-less: an os path, an absolute dbfs path or "<container>/<blob>".
	Path string
}

func (d Destination) String() string {
	if d.Kind == LocalDestination {
		return d.Path
	}
	if d.Kind == BlobDestination {
		return string(d.Kind) + "://" + d.Path
	}
	return string(d.Kind) + ":" + d.Path
}

// ParseDestination understands dbfs:/path, az://container/blob, file:path and
// plain paths.
func ParseDestination(raw string) (Destination, error) {
	switch {
	case raw == "":
		return Destination{}, breverrors.NewValidationError("destination must not be empty")
	case strings.HasPrefix(raw, "dbfs:"):
		p := strings.TrimPrefix(raw, "dbfs:")
		if !strings.HasPrefix(p, "/") {
			return Destination{}, breverrors.NewValidationError("dbfs destination must be absolute: " + raw)
		}
		return Destination{Kind: DBFSDestination, Path: p}, nil
	case strings.HasPrefix(raw, "az://"):
		p := strings.TrimPrefix(raw, "az://")
		if _, _, err := splitBlobPath(p); err != nil {
			return Destination{}, err
		}
		return Destination{Kind: BlobDestination, Path: p}, nil
	case strings.HasPrefix(raw, "file://"):
		return Destination{Kind: LocalDestination, Path: strings.TrimPrefix(raw, "file://")}, nil
	case strings.HasPrefix(raw, "file:"):
		return Destination{Kind: LocalDestination, Path: strings.TrimPrefix(raw, "file:")}, nil
	default:
		return Destination{Kind: LocalDestination, Path: raw}, nil
	}
}

func splitBlobPath(p string) (string, string, error) {
	container, name, ok := strings.Cut(p, "/")
	if !ok || container == "" || name == "" {
		return "", "", breverrors.NewValidationError("blob destination must look like az://<container>/<blob>: " + p)
	}
	return container, name, nil
}
