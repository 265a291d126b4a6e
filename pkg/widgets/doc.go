// Package widgets is the parent of the velt component packages. Each
// component lives in its own subpackage and implements core.Widget over
// a caller-owned state struct:
//
//	st := datepicker.NewState(today)
//	node := core.Bind("when", datepicker.DatePicker{ID: "when"}, st)
//
// The picker components (datepicker, timepicker, colorpicker) open
// their popups through the overlay manager via floating requests;
// modal and contextmenu use their exclusive overlay classes. The
// remaining packages (grid, tabbar, segmentedbutton, spinner,
// slidebar, numberinput, selectionlist, split, badge, card) are plain
// in-tree components.
package widgets
