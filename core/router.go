package core

import (
	"strings"

	"go.uber.org/zap"
)

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

func (s *ScreenStack) replaceTop(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = screen
}

// CleanRoute normalizes a route path: leading slash, no trailing slash.
func CleanRoute(path string) string {
	path = strings.TrimSpace(path)
	path = "/" + strings.Trim(path, "/")
	return path
}

// TabIndexForRoute returns the index of the tab serving path, or -1.
func (m Model) TabIndexForRoute(path string) int {
	want := CleanRoute(path)
	for i, t := range m.tabs {
		if CleanRoute(t.Route()) == want {
			return i
		}
	}
	return -1
}

// Navigate activates the tab serving path. Unknown paths fall back to the
// root route and report false.
func (m *Model) Navigate(path string) bool {
	idx := m.TabIndexForRoute(path)
	if idx < 0 {
		m.Logger().Warn("unknown route", zap.String("route", path))
		if root := m.TabIndexForRoute("/"); root >= 0 {
			m.SwitchTab(root)
		}
		m.SetError(&RouteError{Path: path})
		return false
	}
	m.SwitchTab(idx)
	m.SetStatus(m.tabs[idx].Title())
	return true
}

type RouteError struct {
	Path string
}

func (e *RouteError) Error() string {
	return "no view at " + e.Path
}
