// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package plugins is a registry of named timeline plugin factories.
//
// Plugins are constructed by a factory before the chart is built. The
// registry lets hosts select plugins by name, for example from a config
// file or command-line flag, without importing every implementation
// directly.
//
// Built-in plugins register themselves when their package is imported:
//
//	import (
//	    "github.com/gogpu/timeline/plugins"
//	    _ "github.com/gogpu/timeline/plugins/axislabel"
//	    _ "github.com/gogpu/timeline/plugins/timeaxis"
//	    _ "github.com/gogpu/timeline/plugins/valueaxis"
//	)
//
//	ps, err := plugins.NewAll("axis-labels", "value-axis", "time-axis")
//	if err != nil {
//	    return err
//	}
//	chart, err := timeline.New(container, series, 300, timeline.WithPlugins(ps...))
//
// Third-party plugins register the same way:
//
//	func init() {
//	    plugins.Register("crosshair", func() *timeline.Plugin { return New() })
//	}
package plugins
