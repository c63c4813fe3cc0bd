package ports

import "github.com/bft-labs/beltsort/pkg/log"

// Logger is the logging port used by adapters.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
