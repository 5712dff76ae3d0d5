package opts

import (
	"github.com/walteh/changer/pkg/log"
	"github.com/walteh/changer/pkg/vocab"
)

// RootOpts contains shared options used by all commands. It is filled in
// once flags are parsed.
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Vocab      vocab.Config
	Logger     *log.Logger
}
