// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chartcanvas hosts a timeline chart in a gogpu GPU-accelerated
// window.
//
// The data flow is:
//
//	Series -> Chart.Recompute -> Chart.Draw -> gg.Context -> GPU texture -> window
//
// A Canvas owns a ggcanvas.Canvas and a timeline.Chart painting onto it.
// The host keeps both triggers: it calls Chart().Recompute after pushing
// samples, and RenderTo from its frame callback. Resize events from the
// window are forwarded with Resize; the chart never subscribes to window
// events itself.
//
// # Usage
//
//	series := timeline.NewSeries()
//	cc, err := chartcanvas.New(app.GPUContextProvider(), 800, 300, series, 300,
//	    timeline.WithPlugins(axislabel.New()),
//	)
//	if err != nil {
//	    return err
//	}
//	defer cc.Close()
//
//	app.OnResize(func(w, h int) { _ = cc.Resize(w, h) })
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = cc.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Only Series.Push may be called
// from another goroutine.
package chartcanvas
