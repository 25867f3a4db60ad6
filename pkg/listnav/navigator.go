// Package listnav — курсор по списку результатов поиска, общий для всех
// поисковых виджетов: стрелки двигают подсветку с переносом через край,
// Enter выбирает, Escape закрывает.
package listnav

type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeyEscape
	KeyTab
)

const noHighlight = -1

type Navigator[T any] struct {
	items    []T
	onSelect func(T)
	onClose  func()
	enabled  bool

	highlighted int
}

func New[T any](onSelect func(T)) *Navigator[T] {
	return &Navigator[T]{
		onSelect:    onSelect,
		enabled:     true,
		highlighted: noHighlight,
	}
}

func (n *Navigator[T]) WithOnClose(onClose func()) *Navigator[T] {
	n.onClose = onClose
	return n
}

// SetItems заменяет список, сбрасывая подсветку.
func (n *Navigator[T]) SetItems(items []T) {
	n.items = items
	n.Reset()
}

func (n *Navigator[T]) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// HighlightedIndex возвращает -1, если ничего не подсвечено.
func (n *Navigator[T]) HighlightedIndex() int {
	return n.highlighted
}

func (n *Navigator[T]) Reset() {
	n.highlighted = noHighlight
}

// HandleKey обрабатывает нажатие. При выключенном навигаторе или пустом
// списке любое нажатие игнорируется.
func (n *Navigator[T]) HandleKey(key Key) {
	if !n.enabled || len(n.items) == 0 {
		return
	}

	switch key {
	case KeyDown:
		if n.highlighted < len(n.items)-1 {
			n.highlighted++
		} else {
			n.highlighted = 0
		}
	case KeyUp:
		if n.highlighted > 0 {
			n.highlighted--
		} else {
			n.highlighted = len(n.items) - 1
		}
	case KeyEnter:
		if n.highlighted >= 0 && n.highlighted < len(n.items) {
			n.onSelect(n.items[n.highlighted])
			n.Reset()
		}
	case KeyEscape:
		n.Reset()

		if n.onClose != nil {
			n.onClose()
		}
	case KeyTab:
		n.Reset()
	}
}
