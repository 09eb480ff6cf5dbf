// Package opener runs the cargo-open pipeline: query metadata, find the
// package, derive its directory, resolve the editor and launch it.
package opener

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/fbkclanna/cargo-open/internal/editor"
	"github.com/fbkclanna/cargo-open/internal/metadata"
)

// Opener wires the pipeline's collaborators together.
type Opener struct {
	Provider metadata.Provider
	Lookup   editor.LookupFunc
	Launcher editor.Launcher
	Log      logrus.FieldLogger
}

// Open launches the editor on the source directory of the package named
// name. Steps run strictly in order and the first failure aborts the run.
func (o *Opener) Open(name, manifestPath string) error {
	log := o.logger().WithField("package", name)

	log.WithField("manifest_path", manifestPath).Debug("querying cargo metadata")
	md, err := o.Provider.Metadata(manifestPath)
	if err != nil {
		return err
	}
	log.WithField("packages", len(md.Packages)).Debug("metadata resolved")

	pkg, err := md.FindPackage(name)
	if err != nil {
		return err
	}
	dir, err := pkg.Dir()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"version": pkg.Version, "dir": dir}).Debug("package found")

	ed, err := editor.Resolve(o.Lookup)
	if err != nil {
		return err
	}
	log.WithField("editor", ed).Debug("launching editor")

	return o.Launcher.Launch(ed, dir)
}

func (o *Opener) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
