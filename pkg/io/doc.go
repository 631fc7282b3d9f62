// Package io reads poster inputs and writes poster layouts and artifacts.
//
// # Poster Input
//
// A poster can be described in a small JSON file instead of flags:
//
//	{
//	  "variant": "episode",
//	  "episode": "S4:E1",
//	  "title": "Unge hjerter",
//	  "quote": "we were young and we were sure"
//	}
//
// Canvas fields (width, height, rows) are optional and are filled from the
// selected preset. Use [ImportInput] for a file or [ReadInput] for any reader.
//
// # Layouts
//
// [ExportLayout] and [WriteLayout] store a finished layout as JSON so it can
// be rendered again later without re-running composition; [ImportLayout] and
// [ReadLayout] load it back.
//
// # Artifacts
//
// [WriteArtifacts] writes rendered outputs next to each other, one file per
// format, and reports every write to the registered output hooks.
package io
