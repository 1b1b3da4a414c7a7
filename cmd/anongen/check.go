package main

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// typeCheck loads the package in dir and fails if it does not type-check.
func typeCheck(log *zap.Logger, dir string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return errors.Wrapf(err, "loading %s", dir)
	}

	var count int
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, pkgErr := range pkg.Errors {
			log.Error("type error", zap.String("package", pkg.PkgPath), zap.String("error", pkgErr.Error()))
			count++
		}
	})
	if count > 0 {
		return errors.Errorf("%d errors in %s", count, dir)
	}

	log.Info("package type-checks", zap.String("dir", dir))
	return nil
}
