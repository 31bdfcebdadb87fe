// Package tui implements the terminal user interface for the BuildIT planner.
//
// Built on Bubble Tea, it follows the Elm architecture: AppModel owns a
// planner.Session and every change flows through Update. Backend calls run
// as tea.Cmds and report back as messages, so the UI never blocks.
//
// # Architecture
//
// The TUI has two screens:
//   - Planner: mode toggle, kit cards and custom parts (build mode) or a
//     goal description (reverse mode), and the Generate button
//   - Result: tabbed plan (Overview, Steps, Wiring or Parts, Code), or an
//     error panel with troubleshooting hints when generation failed
//
// Both screens use RenderApplicationContainer for a consistent header,
// content area and context-sensitive footer.
//
// # Components
//
//   - PartInputModel: free-text custom parts with removable chips; reports
//     changes as PartsChangedMsg
//   - RenderKitCard: one selectable kit with icon, description and part count
//   - StepWizardModel: step-by-step assembly guide with completion tracking
//     and a progress bar
//
// Overview and firmware are rendered with glamour; rendering failures fall
// back to plain text.
//
// # Usage Example
//
//	client := api.NewClient("http://localhost:8000")
//	app := tui.NewAppModel(tui.Options{Backend: client, APIURL: client.BaseURL})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Keys
//
// Planner: tab/shift+tab move between sections, space or enter selects,
// ←/→ switch mode, ctrl+g generates from anywhere, q quits.
//
// Result: tab/shift+tab switch tabs, ↑/↓ scroll, esc returns to the planner
// with every choice intact, ctrl+g regenerates. On the Steps tab ←/→ move
// between steps, space toggles completion and 1-9 jump to a step.
package tui
