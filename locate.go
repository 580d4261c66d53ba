package unpacker

// Package file locate.go resolves and caches the location and version
// of each external program the unpacker depends on.

import (
	"bytes"
	"context"
	"maps"
	"os/exec"
	"regexp"

	"github.com/osarchive/unpacker/command"
	"go.uber.org/zap"
)

// Binding is the resolved location of one external program. An empty
// Path records that the program is not installed. A Binding is created
// on first need and is immutable for the lifetime of the instance.
type Binding struct {
	Name    string // Name is the program name looked up on the search path.
	Path    string // Path is the absolute program path, empty when unavailable.
	Version string // Version is the token reported by the program itself.
}

// Available reports whether the program was found on the search path.
func (b Binding) Available() bool {
	return b.Path != ""
}

// versionToken matches the dotted version number in a program's
// version report or banner.
var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// lookup resolves the named program at most once per instance,
// caching both positive and negative outcomes.
func (u *Unpacker) lookup(name string) Binding {
	if b, ok := u.tools[name]; ok {
		return b
	}
	b := Binding{Name: name}
	if path, err := exec.LookPath(name); err == nil {
		b.Path = path
		b.Version = u.version(path, name)
	} else {
		u.logger().Debug("program not found", zap.String("prog", name))
	}
	if u.tools == nil {
		u.tools = make(map[string]Binding)
	}
	u.tools[name] = b
	return b
}

// version invokes the program's own version report and extracts the
// version token. Programs such as unrar banner on a bare invocation
// and may exit nonzero, so the exit status is ignored here.
func (u *Unpacker) version(path, name string) string {
	ctx, cancel := context.WithTimeout(context.Background(), TimeoutLookup)
	defer cancel()
	cmd := exec.CommandContext(ctx, path, command.VersionArgs(name)...)
	out, _ := cmd.CombinedOutput()
	return versionToken.FindString(string(out))
}

// CheckCommands ensures every required program has been probed and
// returns a snapshot of the bindings, keyed by program name. It is
// idempotent and a merely absent program is never an error.
func (u *Unpacker) CheckCommands() map[string]Binding {
	for _, name := range []string{
		command.Tar, command.Gzip, command.Unzip, command.Unrar,
	} {
		u.lookup(name)
	}
	return maps.Clone(u.tools)
}

// backupSupported reports whether the move utility understands
// numbered backups, a GNU coreutils extension. Busybox mv reports a
// version yet lacks the backup option, so only the coreutils banner
// counts. The outcome is probed at most once per instance.
func (u *Unpacker) backupSupported() bool {
	if u.mvBackup != nil {
		return *u.mvBackup
	}
	ok := false
	if b := u.lookup(command.Move); b.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), TimeoutLookup)
		defer cancel()
		cmd := exec.CommandContext(ctx, b.Path, command.VersionArgs(command.Move)...)
		out, err := cmd.CombinedOutput()
		ok = err == nil && bytes.Contains(out, []byte("GNU coreutils"))
	}
	u.mvBackup = &ok
	return ok
}
