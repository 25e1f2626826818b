// Package codequest is the title menu and story intro of CodeQuest, built
// on [Ebitengine].
//
// The quickest way in is [Run], which loads the UI skin, opens a window and
// starts on the menu:
//
//	err := codequest.Run(codequest.RunConfig{
//		Title:  "CodeQuest",
//		Assets: os.DirFS("assets"),
//	})
//
// For full control, build a [Game] with [NewGame] and hand it to
// ebiten.RunGame yourself.
//
// # Screens
//
// A [Screen] owns a [Node] tree, an [InputRouter], its textures and its
// animations. The [ScreenController] holds exactly one active screen and
// moves between screens with a fade-out, swap, fade-in sequence. Screens
// never replace themselves: they return an [Outcome] naming the next
// screen's [ScreenFactory], and the controller starts the transition. The
// first request wins; later requests during a transition are ignored, and
// so is input.
//
//	menu --Start--> intro --Continue--> menu
//
// # Decorative fields
//
// [ParticleField] drifts faint square particles upward and [GlyphRainField]
// drops short keyword fragments. Both keep a fixed pool and recycle members
// in place when they leave the area. Fields use a y-up coordinate system
// with the origin at the bottom-left; the [Batch] they draw through flips to
// screen space. Attach a field to a tree with [NewFieldLayer].
//
// # Assets
//
// Art is optional. [TextureSet.OrPlaceholder] substitutes a solid image when
// a file is missing, and [AssetLoader.LoadTexture] reports the miss as an
// error matching [ErrMissingOptionalAsset]. The skin ([LoadSkin]) is the one
// required asset; failures match [ErrMissingRequiredAsset].
//
// # Debug mode
//
// [RunConfig].Debug logs transitions, routed actions, placeholder
// substitutions and periodic frame stats to stderr with a "[codequest]"
// prefix.
//
// # Scripted runs
//
// [LoadTestScript] parses a JSON list of key, tap, wait and screenshot
// steps. Attached to a [Game], it feeds one injected event per frame and
// writes PNG screenshots to [Game].ScreenshotDir.
//
// [Ebitengine]: https://ebitengine.org
package codequest
