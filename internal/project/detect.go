package project

// hasDependency reports whether the project manifest lists name. Detection
// never fails: a missing or malformed manifest simply does not match.
func (b *base) hasDependency(name string) bool {
	pkg, err := b.PackageJSON("")
	if err != nil {
		b.logger.Debug("ignoring manifest during detection", "error", err)
		return false
	}
	if pkg == nil {
		return false
	}
	return pkg.HasDependency(name)
}
