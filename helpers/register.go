// Package helpers provides tag helpers shipped with the program.
package helpers

import (
	"go.uber.org/zap"

	"thr/config"
	"thr/registry"
	"thr/taghelpers"
)

var headings = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Register adds helpers enabled by configuration to the registry.
func Register(reg *registry.Registry, cfg *config.RenderConfig, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.Helpers.Environment {
		current := cfg.Environment
		reg.Register("environment", "environment", func() taghelpers.TagHelper {
			return &EnvironmentTagHelper{Current: current}
		})
	}
	if cfg.Helpers.Anchors {
		for _, h := range headings {
			reg.Register("anchor", h, func() taghelpers.TagHelper {
				return &AnchorTagHelper{}
			})
		}
	}
	if cfg.Helpers.Lang {
		langLog := log.Named("lang")
		reg.RegisterWithAttributes("lang", registry.Wildcard, []string{"lang"}, func() taghelpers.TagHelper {
			return &LangTagHelper{log: langLog}
		})
	}
	for _, a := range cfg.Helpers.Attributes {
		reg.Register("attribute:"+a.Name, a.Tag, func() taghelpers.TagHelper {
			return &StaticAttributeTagHelper{StaticAttribute: a}
		})
	}
	log.Debug("Tag helpers registered", zap.Strings("helpers", reg.Names()))
}
