package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	fretcalc "github.com/bcelen/Fret-calculator"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	windowW    = 1100
	windowH    = 720
	minWindowW = 980
	minWindowH = 680

	textScale = 2
	charW     = 7 * textScale
	lineH     = 14 * textScale
)

var (
	bgColor           = color.RGBA{192, 192, 192, 255}
	panelColor        = color.RGBA{192, 192, 192, 255}
	borderColor       = color.RGBA{128, 128, 128, 255}
	buttonColor       = color.RGBA{192, 192, 192, 255}
	highlightColor    = color.RGBA{0, 0, 128, 255}
	editorPlaceholder = "Select a pitch-order file or apply an order preset."

	// 3D bevel colors for old-school embossed look.
	bevelLight  = color.RGBA{255, 255, 255, 255}
	bevelDarker = color.RGBA{64, 64, 64, 255}

	// Sunken panel / edit area interior.
	sunkenBgColor = color.RGBA{24, 24, 32, 255}

	// Slider fill accent.
	sliderFillColor = color.RGBA{0, 0, 128, 255}
)

type navEntry struct {
	name  string
	path  string
	isDir bool
}

// Ranges for the input sliders.
const (
	refMin, refMax       = 110.0, 880.0
	lengthMin, lengthMax = 100.0, 1200.0
)

// Comma sliders: b, b2, #3 with their own value ranges.
var (
	commaLabels = [3]string{"b", "b2", "#3"}
	commaMin    = [3]float64{-100, -200, 0}
	commaMax    = [3]float64{0, 0, 200}
)

type presetEntry struct {
	name   string
	commas [3]float64 // b, b2, #3 in cents
}

var presets = []presetEntry{
	{"Folk", [3]float64{-22.64, -45.28, 67.92}},
	{"AEU", [3]float64{-22.64, -45.28, 3 * 22.64}},
	{"24-EDO", [3]float64{-50, -100, 150}},
}

var orderPresets = []struct {
	name string
	text string
}{
	{"Lower", fretcalc.DefaultOrder},
	{"Naturals", "mi, fa, fa#, sol, sol#, la, si, do, do#, re, mi"},
}

type game struct {
	refHz     float64
	length    float64
	presetIdx int
	commas    [3]float64

	rows        []fretcalc.Row
	tableScroll int

	draggingSlider int // 0=none, 1=ref, 2=length
	draggingComma  int // -1=none, 0-2=comma index

	editor       []rune
	editorScroll int
	wrappedLines []string
	wrapWidth    int
	wrapDirty    bool

	orderIdx int

	status    string
	statusErr bool

	cwd       string
	nav       []navEntry
	navScroll int

	loadedPath string

	frameTick        int
	lastNavPath      string
	lastNavClickTick int

	textCache map[string]*ebiten.Image
	viewW     int
	viewH     int
}

func newGame(initialText string, initialPath string) (*game, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if initialPath != "" {
		cwd = filepath.Dir(initialPath)
	}
	if initialText == "" {
		initialText = fretcalc.DefaultOrder
	}

	g := &game{
		refHz:         440,
		length:        580,
		presetIdx:     0,
		commas:        presets[0].commas,
		draggingComma: -1,
		editor:        []rune(initialText),
		status:        "Ready",
		cwd:           cwd,
		loadedPath:    initialPath,
		textCache:     make(map[string]*ebiten.Image, 256),
		wrapDirty:     true,
		viewW:         windowW,
		viewH:         windowH,
	}
	if err := g.refreshNav(); err != nil {
		g.setError(err.Error())
	}
	g.recompute()
	return g, nil
}

func (g *game) Update() error {
	g.frameTick++
	g.handleMouse()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	l := g.layoutRects()

	g.drawSunkenPanel(screen, l.nav)
	g.drawPanel(screen, l.commas)
	g.drawSunkenPanel(screen, l.editor)
	g.drawSunkenPanel(screen, l.table)
	g.drawButton(screen, l.compute, "Compute")
	g.drawButton(screen, l.preset, presets[g.presetIdx].name)
	g.drawButton(screen, l.order, orderPresets[g.orderIdx].name)
	g.drawButton(screen, l.save, "Save CSV")
	g.drawRefSlider(screen, l.ref)
	g.drawLengthSlider(screen, l.length)
	g.drawSunkenPanel(screen, l.status)

	g.drawText(screen, "Files", l.nav.Min.X+8, l.nav.Min.Y+8)

	g.drawNavigator(screen, l.nav)
	g.drawCommaSliders(screen, l.commas)
	g.drawEditor(screen, l.editor)
	g.drawTable(screen, l.table)
	g.drawStatus(screen, l.status)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW < minWindowW {
		outsideW = minWindowW
	}
	if outsideH < minWindowH {
		outsideH = minWindowH
	}
	g.viewW = outsideW
	g.viewH = outsideH
	return outsideW, outsideH
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	l := g.layoutRects()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case pointInRect(mx, my, l.compute):
			g.recompute()
			return
		case pointInRect(mx, my, l.preset):
			g.cyclePreset()
			return
		case pointInRect(mx, my, l.order):
			g.cycleOrder()
			return
		case pointInRect(mx, my, l.save):
			g.saveCSV()
			return
		case pointInRect(mx, my, l.ref):
			g.draggingSlider = 1
			g.updateRefFromMouse(mx, l.ref)
			return
		case pointInRect(mx, my, l.length):
			g.draggingSlider = 2
			g.updateLengthFromMouse(mx, l.length)
			return
		case pointInRect(mx, my, l.commas):
			g.clickCommas(mx, my, l.commas)
			return
		case pointInRect(mx, my, l.nav):
			g.clickNavigator(my, l.nav)
			return
		case pointInRect(mx, my, l.editor):
			g.clickEditorScroll(mx, my, l.editor)
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.draggingSlider != 0 || g.draggingComma >= 0 {
			g.draggingSlider = 0
			g.draggingComma = -1
			g.recompute()
		}
	}
	if g.draggingSlider == 1 {
		g.updateRefFromMouse(mx, l.ref)
	}
	if g.draggingSlider == 2 {
		g.updateLengthFromMouse(mx, l.length)
	}
	if g.draggingComma >= 0 {
		g.dragComma(mx, my, l.commas)
	}

	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	if pointInRect(mx, my, l.nav) {
		g.navScroll -= int(wy * 2)
		if g.navScroll < 0 {
			g.navScroll = 0
		}
	}
	if pointInRect(mx, my, l.editor) {
		g.editorScroll -= int(wy * 2)
		if g.editorScroll < 0 {
			g.editorScroll = 0
		}
	}
	if pointInRect(mx, my, l.table) {
		g.tableScroll -= int(wy * 2)
		if g.tableScroll < 0 {
			g.tableScroll = 0
		}
	}
}

type uiLayout struct {
	nav, commas, editor, table image.Rectangle
	compute, preset, order     image.Rectangle
	save, ref, length, status  image.Rectangle
}

func (g *game) layoutRects() uiLayout {
	w := g.viewW
	h := g.viewH
	if w < minWindowW {
		w = minWindowW
	}
	if h < minWindowH {
		h = minWindowH
	}

	pad := 20
	rowH := 44
	statusH := 40

	// Bottom: status row, then controls row above it.
	statusTop := h - pad - statusH
	controlsTop := statusTop - 8 - rowH

	// Left column: nav + comma sliders.
	navW := 280
	commasH := 150
	navBottom := controlsTop - 12
	commasTop := navBottom - commasH
	navRect := image.Rect(pad, pad, pad+navW, commasTop-8)
	commasRect := image.Rect(pad, commasTop, pad+navW, navBottom)

	// Right column: editor + result table.
	rightX := navRect.Max.X + 12
	rightW := w - rightX - pad
	if rightW < 320 {
		rightW = 320
	}
	contentBottom := controlsTop - 12
	contentH := contentBottom - pad
	editorH := int(float64(contentH) * 0.34)
	if editorH < 140 {
		editorH = 140
	}
	editorRect := image.Rect(rightX, pad, rightX+rightW, pad+editorH)
	tableRect := image.Rect(rightX, editorRect.Max.Y+12, rightX+rightW, contentBottom)

	// Controls row.
	computeRect := image.Rect(pad, controlsTop, pad+110, controlsTop+rowH)
	presetRect := image.Rect(pad+122, controlsTop, pad+242, controlsTop+rowH)
	orderRect := image.Rect(pad+254, controlsTop, pad+404, controlsTop+rowH)
	saveRect := image.Rect(pad+416, controlsTop, pad+536, controlsTop+rowH)
	refRect := image.Rect(pad+548, controlsTop, pad+748, controlsTop+rowH)
	lenRight := pad + 760 + 200
	if lenRight > w-pad {
		lenRight = w - pad
	}
	lengthRect := image.Rect(pad+760, controlsTop, lenRight, controlsTop+rowH)

	// Status row.
	statusRect := image.Rect(pad, statusTop, w-pad, statusTop+statusH)

	return uiLayout{
		nav: navRect, commas: commasRect, editor: editorRect, table: tableRect,
		compute: computeRect, preset: presetRect, order: orderRect,
		save: saveRect, ref: refRect, length: lengthRect, status: statusRect,
	}
}

func (g *game) recompute() {
	text := strings.TrimSpace(string(g.editor))
	if text == "" {
		g.setError("Pitch order is empty")
		return
	}
	calc, err := fretcalc.New(g.refHz, g.length,
		fretcalc.WithAccidentalCents("b", g.commas[0]),
		fretcalc.WithAccidentalCents("b1", g.commas[0]),
		fretcalc.WithAccidentalCents("b2", g.commas[1]),
		fretcalc.WithAccidentalCents("#3", g.commas[2]),
	)
	if err != nil {
		g.setError(err.Error())
		return
	}
	rows, err := calc.Compute(text)
	if err != nil {
		g.rows = nil
		g.setError(err.Error())
		return
	}
	g.rows = rows
	first := rows[0].Cents
	last := rows[len(rows)-1].Cents
	g.setStatus(fmt.Sprintf("Computed %d rows. First: %.3f c, last: %.3f c", len(rows), first, last))
}

func (g *game) cyclePreset() {
	g.presetIdx = (g.presetIdx + 1) % len(presets)
	g.commas = presets[g.presetIdx].commas
	g.recompute()
}

func (g *game) cycleOrder() {
	g.orderIdx = (g.orderIdx + 1) % len(orderPresets)
	g.editor = []rune(orderPresets[g.orderIdx].text)
	g.editorScroll = 0
	g.wrapDirty = true
	g.loadedPath = ""
	g.recompute()
}

func (g *game) saveCSV() {
	if len(g.rows) == 0 {
		g.setError("Nothing to save; compute a table first")
		return
	}
	path := filepath.Join(g.cwd, "turkish_fret_calculator.csv")
	if err := os.WriteFile(path, fretcalc.EncodeCSV(g.rows), 0o644); err != nil {
		g.setError(err.Error())
		return
	}
	g.setStatus("Saved " + path)
}

func (g *game) drawNavigator(screen *ebiten.Image, rect image.Rectangle) {
	label := g.cwd
	if g.loadedPath != "" {
		label = g.cwd + "  [" + filepath.Base(g.loadedPath) + "]"
	}
	maxChars := max(8, (rect.Dx()-16)/charW)
	g.drawText(screen, shortenMiddle(label, maxChars), rect.Min.X+8, rect.Min.Y+8+lineH)

	top := rect.Min.Y + 12 + (lineH * 2)
	maxLines := (rect.Dy() - (lineH * 2) - 18) / lineH
	if maxLines < 1 {
		maxLines = 1
	}
	if g.navScroll > len(g.nav)-1 {
		g.navScroll = max(0, len(g.nav)-1)
	}

	for i := 0; i < maxLines; i++ {
		idx := g.navScroll + i
		if idx < 0 || idx >= len(g.nav) {
			break
		}
		entry := g.nav[idx]
		y := top + i*lineH
		if g.loadedPath != "" && !entry.isDir && samePath(entry.path, g.loadedPath) {
			gx := rect.Min.X + 6
			gy := y - 2
			gh := lineH + 2
			ebitenutil.DrawRect(screen, float64(gx), float64(gy), float64(rect.Dx()-12), float64(gh), highlightColor)
		}
		txt := entry.name
		if entry.isDir && entry.name != ".." {
			txt += "/"
		}
		g.drawText(screen, shortenEnd(txt, maxChars-1), rect.Min.X+10, y)
	}
}

func (g *game) drawEditor(screen *ebiten.Image, rect image.Rectangle) {
	text := string(g.editor)
	top := rect.Min.Y + 12 + lineH
	maxLines := (rect.Dy() - lineH - 20) / lineH
	if maxLines < 1 {
		maxLines = 1
	}
	maxChars := max(8, (rect.Dx()-24)/charW) // reserve space for scrollbar
	lines := g.wrappedEditorLines(maxChars)
	if g.editorScroll > len(lines)-1 {
		g.editorScroll = max(0, len(lines)-1)
	}
	maxScroll := max(0, len(lines)-maxLines)
	if g.editorScroll > maxScroll {
		g.editorScroll = maxScroll
	}

	g.drawText(screen, "Pitch order", rect.Min.X+8, rect.Min.Y+6)
	if text == "" {
		g.drawText(screen, shortenEnd(editorPlaceholder, maxChars), rect.Min.X+8, top)
	}

	for i := 0; i < maxLines; i++ {
		idx := g.editorScroll + i
		if idx >= len(lines) {
			break
		}
		g.drawText(screen, shortenEnd(lines[idx], maxChars), rect.Min.X+8, top+i*lineH)
	}
	g.drawScrollbar(screen, rect, top, maxLines, len(lines), g.editorScroll)
}

func (g *game) wrappedEditorLines(maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}
	if !g.wrapDirty && g.wrapWidth == maxChars && len(g.wrappedLines) > 0 {
		return g.wrappedLines
	}

	source := string(g.editor)
	baseLines := strings.Split(source, "\n")
	out := make([]string, 0, len(baseLines))
	for _, raw := range baseLines {
		if raw == "" {
			out = append(out, "")
			continue
		}
		rest := []rune(raw)
		for len(rest) > maxChars {
			cut := maxChars
			breakAt := cut
			for breakAt > 0 && rest[breakAt-1] != ' ' && rest[breakAt-1] != '\t' {
				breakAt--
			}
			if breakAt > maxChars/3 {
				cut = breakAt
			}
			line := strings.TrimRight(string(rest[:cut]), " \t")
			if line == "" {
				line = string(rest[:cut])
			}
			out = append(out, line)
			rest = []rune(strings.TrimLeft(string(rest[cut:]), " \t"))
		}
		out = append(out, string(rest))
	}
	if len(out) == 0 {
		out = append(out, "")
	}

	g.wrappedLines = out
	g.wrapWidth = maxChars
	g.wrapDirty = false
	return g.wrappedLines
}

func (g *game) drawScrollbar(screen *ebiten.Image, rect image.Rectangle, top int, maxLines int, totalLines int, scroll int) {
	trackX := rect.Max.X - 12
	trackY := top
	trackH := max(1, maxLines*lineH)
	ebitenutil.DrawRect(screen, float64(trackX), float64(trackY), 6, float64(trackH), bevelDarker)

	if totalLines <= maxLines {
		return
	}
	maxScroll := totalLines - maxLines
	thumbH := max(lineH, int(float64(trackH)*float64(maxLines)/float64(totalLines)))
	thumbMaxY := trackH - thumbH
	thumbY := trackY
	if thumbMaxY > 0 && maxScroll > 0 {
		thumbY += int(float64(thumbMaxY) * float64(scroll) / float64(maxScroll))
	}
	thumbRect := image.Rect(trackX, thumbY, trackX+6, thumbY+thumbH)
	ebitenutil.DrawRect(screen, float64(trackX), float64(thumbY), 6, float64(thumbH), panelColor)
	drawBorder(screen, thumbRect)
}

func (g *game) clickEditorScroll(mx int, my int, rect image.Rectangle) {
	trackX := rect.Max.X - 14
	if mx < trackX {
		return
	}
	top := rect.Min.Y + 12 + lineH
	maxLines := (rect.Dy() - lineH - 20) / lineH
	if maxLines < 1 {
		maxLines = 1
	}
	maxChars := max(8, (rect.Dx()-24)/charW)
	totalLines := len(g.wrappedEditorLines(maxChars))
	if totalLines <= maxLines {
		g.editorScroll = 0
		return
	}
	maxScroll := totalLines - maxLines
	trackY := top
	trackH := max(1, maxLines*lineH)
	pos := clamp(float64(my-trackY), 0, float64(trackH))
	g.editorScroll = int((pos / float64(trackH)) * float64(maxScroll))
}

func (g *game) drawTable(screen *ebiten.Image, rect image.Rectangle) {
	g.drawText(screen, "Results (nut->fret in the string-length unit)", rect.Min.X+8, rect.Min.Y+6)
	top := rect.Min.Y + 12 + lineH
	maxLines := (rect.Dy() - lineH - 20) / lineH
	if maxLines < 1 {
		maxLines = 1
	}
	maxChars := max(8, (rect.Dx()-24)/charW)

	if len(g.rows) == 0 {
		g.drawText(screen, "No rows. Fix the pitch order and press Compute.", rect.Min.X+8, top)
		return
	}

	header := fmt.Sprintf("%3s  %-8s %10s %12s %10s %9s", "#", "pitch", "cents", "Hz", "nut->fret", "spacing")
	lines := make([]string, 0, len(g.rows)+1)
	lines = append(lines, header)
	for _, r := range g.rows {
		lines = append(lines, fmt.Sprintf("%3d  %-8s %10.3f %12.5f %10.3f %9.3f",
			r.Index, r.Pitch, r.Cents, r.Frequency, r.Distance, r.Spacing))
	}

	maxScroll := max(0, len(lines)-maxLines)
	if g.tableScroll > maxScroll {
		g.tableScroll = maxScroll
	}
	for i := 0; i < maxLines; i++ {
		idx := g.tableScroll + i
		if idx >= len(lines) {
			break
		}
		g.drawText(screen, shortenEnd(lines[idx], maxChars), rect.Min.X+8, top+i*lineH)
	}
	g.drawScrollbar(screen, rect, top, maxLines, len(lines), g.tableScroll)
}

func (g *game) drawStatus(screen *ebiten.Image, rect image.Rectangle) {
	msg := "Status: " + g.status
	if g.statusErr {
		msg = "Status: ERROR - " + g.status
	}
	maxChars := max(8, (rect.Dx()-16)/charW)
	g.drawText(screen, shortenEnd(msg, maxChars), rect.Min.X+8, rect.Min.Y+6)
}

func (g *game) drawRefSlider(screen *ebiten.Image, rect image.Rectangle) {
	g.drawHSlider(screen, rect, fmt.Sprintf("Ref %.0f", g.refHz), 116,
		(g.refHz-refMin)/(refMax-refMin))
}

func (g *game) drawLengthSlider(screen *ebiten.Image, rect image.Rectangle) {
	g.drawHSlider(screen, rect, fmt.Sprintf("L %.0f", g.length), 96,
		(g.length-lengthMin)/(lengthMax-lengthMin))
}

func (g *game) drawHSlider(screen *ebiten.Image, rect image.Rectangle, label string, labelW int, frac float64) {
	g.drawPanel(screen, rect)
	g.drawText(screen, label, rect.Min.X+8, rect.Min.Y+8)

	trackX := rect.Min.X + labelW
	trackW := rect.Dx() - labelW - 16
	trackY := rect.Min.Y + rect.Dy()/2 - 4
	if trackW < 20 {
		return
	}
	// Sunken track groove.
	ebitenutil.DrawRect(screen, float64(trackX), float64(trackY), float64(trackW), 8, bevelDarker)
	ebitenutil.DrawRect(screen, float64(trackX), float64(trackY), float64(trackW-1), 1, borderColor)
	ebitenutil.DrawRect(screen, float64(trackX), float64(trackY), 1, 7, borderColor)
	// Fill.
	fillW := int(float64(trackW) * clamp(frac, 0, 1))
	if fillW > 2 {
		ebitenutil.DrawRect(screen, float64(trackX+1), float64(trackY+1), float64(fillW-1), 6, sliderFillColor)
	}
	// Raised knob.
	knobX := trackX + fillW - 5
	if knobX < trackX-5 {
		knobX = trackX - 5
	}
	if knobX > trackX+trackW-5 {
		knobX = trackX + trackW - 5
	}
	knobRect := image.Rect(knobX, trackY-4, knobX+10, trackY+12)
	ebitenutil.DrawRect(screen, float64(knobRect.Min.X), float64(knobRect.Min.Y), float64(knobRect.Dx()), float64(knobRect.Dy()), panelColor)
	drawBorder(screen, knobRect)
}

func (g *game) updateRefFromMouse(mx int, rect image.Rectangle) {
	trackX := rect.Min.X + 116
	trackW := rect.Dx() - 116 - 16
	if trackW <= 0 {
		return
	}
	frac := clamp(float64(mx-trackX)/float64(trackW), 0, 1)
	g.refHz = refMin + frac*(refMax-refMin)
	g.setStatus(fmt.Sprintf("Reference: %.1f Hz", g.refHz))
}

func (g *game) updateLengthFromMouse(mx int, rect image.Rectangle) {
	trackX := rect.Min.X + 96
	trackW := rect.Dx() - 96 - 16
	if trackW <= 0 {
		return
	}
	frac := clamp(float64(mx-trackX)/float64(trackW), 0, 1)
	g.length = lengthMin + frac*(lengthMax-lengthMin)
	g.setStatus(fmt.Sprintf("String length: %.0f", g.length))
}

func (g *game) drawCommaSliders(screen *ebiten.Image, rect image.Rectangle) {
	numBands := len(commaLabels)
	pad := 8
	labelH := lineH + 6
	innerX := rect.Min.X + pad
	innerW := rect.Dx() - pad*2
	innerY := rect.Min.Y + labelH
	innerH := rect.Dy() - labelH - pad

	bandW := innerW / numBands
	if bandW < 10 {
		return
	}

	for i := 0; i < numBands; i++ {
		bx := innerX + i*bandW
		by := innerY
		bw := bandW - 4
		bh := innerH - lineH

		g.drawText(screen, fmt.Sprintf("%s %.0f", commaLabels[i], g.commas[i]), bx, rect.Min.Y+4)

		// Sunken track groove.
		ebitenutil.DrawRect(screen, float64(bx+bw/2-2), float64(by), 4, float64(bh), bevelDarker)

		// Zero line.
		zeroFrac := (0 - commaMin[i]) / (commaMax[i] - commaMin[i])
		zeroY := by + bh - int(zeroFrac*float64(bh))
		ebitenutil.DrawRect(screen, float64(bx), float64(zeroY), float64(bw), 1, borderColor)

		// Knob: map the comma range to bottom..top.
		frac := clamp((g.commas[i]-commaMin[i])/(commaMax[i]-commaMin[i]), 0, 1)
		knobY := by + bh - int(frac*float64(bh)) - 4

		knobRect := image.Rect(bx+2, knobY, bx+bw-2, knobY+8)
		ebitenutil.DrawRect(screen, float64(knobRect.Min.X), float64(knobRect.Min.Y), float64(knobRect.Dx()), float64(knobRect.Dy()), panelColor)
		drawBorder(screen, knobRect)
	}
}

func (g *game) clickCommas(mx, my int, rect image.Rectangle) {
	band := g.commaBandFromMouse(mx, rect)
	if band < 0 {
		return
	}
	g.draggingComma = band
	g.dragComma(mx, my, rect)
}

func (g *game) dragComma(mx, my int, rect image.Rectangle) {
	band := g.draggingComma
	if band < 0 || band >= len(commaLabels) {
		return
	}
	pad := 8
	labelH := lineH + 6
	innerY := rect.Min.Y + labelH
	innerH := rect.Dy() - labelH - pad - lineH
	if innerH <= 0 {
		return
	}
	frac := 1.0 - clamp(float64(my-innerY)/float64(innerH), 0, 1)
	g.commas[band] = commaMin[band] + frac*(commaMax[band]-commaMin[band])
	g.setStatus(fmt.Sprintf("%s: %.2f c", commaLabels[band], g.commas[band]))
}

func (g *game) commaBandFromMouse(mx int, rect image.Rectangle) int {
	pad := 8
	innerX := rect.Min.X + pad
	innerW := rect.Dx() - pad*2
	numBands := len(commaLabels)
	bandW := innerW / numBands
	if bandW <= 0 {
		return -1
	}
	idx := (mx - innerX) / bandW
	if idx < 0 || idx >= numBands {
		return -1
	}
	return idx
}

func (g *game) clickNavigator(my int, rect image.Rectangle) {
	top := rect.Min.Y + 12 + (lineH * 2)
	row := (my - top) / lineH
	if row < 0 {
		return
	}
	idx := g.navScroll + row
	if idx < 0 || idx >= len(g.nav) {
		return
	}
	entry := g.nav[idx]
	if entry.isDir {
		g.cwd = entry.path
		g.navScroll = 0
		if err := g.refreshNav(); err != nil {
			g.setError(err.Error())
			return
		}
		g.setStatus("Directory: " + g.cwd)
		return
	}

	doubleClickSame := samePath(entry.path, g.lastNavPath) && (g.frameTick-g.lastNavClickTick) <= 18
	g.lastNavPath = entry.path
	g.lastNavClickTick = g.frameTick

	if err := g.loadFile(entry.path); err != nil {
		g.setError(err.Error())
		return
	}
	if doubleClickSame {
		g.recompute()
		return
	}
	g.setStatus("Loaded " + filepath.Base(entry.path))
}

func (g *game) refreshNav() error {
	items, err := os.ReadDir(g.cwd)
	if err != nil {
		return err
	}
	dirs := make([]navEntry, 0)
	files := make([]navEntry, 0)

	parent := filepath.Dir(g.cwd)
	if parent != g.cwd {
		dirs = append(dirs, navEntry{name: "..", path: parent, isDir: true})
	}

	for _, it := range items {
		name := it.Name()
		full := filepath.Join(g.cwd, name)
		if it.IsDir() {
			dirs = append(dirs, navEntry{name: name, path: full, isDir: true})
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".txt") {
			files = append(files, navEntry{name: name, path: full, isDir: false})
		}
	}

	sort.Slice(dirs, func(i, j int) bool {
		if dirs[i].name == ".." {
			return true
		}
		if dirs[j].name == ".." {
			return false
		}
		return strings.ToLower(dirs[i].name) < strings.ToLower(dirs[j].name)
	})
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].name) < strings.ToLower(files[j].name)
	})
	g.nav = append(dirs, files...)
	return nil
}

func (g *game) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	g.editor = []rune(string(data))
	g.editorScroll = 0
	g.wrapDirty = true
	g.loadedPath = path
	g.cwd = filepath.Dir(path)

	return g.refreshNav()
}

func (g *game) setError(msg string) {
	g.status = msg
	g.statusErr = true
}

func (g *game) setStatus(msg string) {
	g.status = msg
	g.statusErr = false
}

func (g *game) drawPanel(screen *ebiten.Image, rect image.Rectangle) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), panelColor)
	drawBorder(screen, rect)
}

func (g *game) drawSunkenPanel(screen *ebiten.Image, rect image.Rectangle) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), sunkenBgColor)
	drawSunkenBorder(screen, rect)
}

func (g *game) drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), buttonColor)
	drawBorder(screen, rect)
	labelW := len([]rune(label)) * charW
	x := rect.Min.X + (rect.Dx()-labelW)/2
	y := rect.Min.Y + (rect.Dy()-lineH)/2
	g.drawText(screen, label, x, y)
}

// drawBorder draws a raised 3D bevel (highlight top/left, shadow bottom/right).
func drawBorder(screen *ebiten.Image, rect image.Rectangle) {
	x := float64(rect.Min.X)
	y := float64(rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	// Outer highlight: top and left.
	ebitenutil.DrawRect(screen, x, y, w-1, 1, bevelLight)
	ebitenutil.DrawRect(screen, x, y+1, 1, h-2, bevelLight)
	// Outer shadow: bottom and right.
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, bevelDarker)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, bevelDarker)
	// Inner shadow: bottom and right.
	ebitenutil.DrawRect(screen, x+1, y+h-2, w-3, 1, borderColor)
	ebitenutil.DrawRect(screen, x+w-2, y+1, 1, h-3, borderColor)
}

// drawSunkenBorder draws a sunken 3D bevel (shadow top/left, highlight bottom/right).
func drawSunkenBorder(screen *ebiten.Image, rect image.Rectangle) {
	x := float64(rect.Min.X)
	y := float64(rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	// Outer shadow: top and left.
	ebitenutil.DrawRect(screen, x, y, w-1, 1, borderColor)
	ebitenutil.DrawRect(screen, x, y+1, 1, h-2, borderColor)
	// Outer highlight: bottom and right.
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, bevelLight)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, bevelLight)
	// Inner shadow: top and left.
	ebitenutil.DrawRect(screen, x+1, y+1, w-3, 1, bevelDarker)
	ebitenutil.DrawRect(screen, x+1, y+2, 1, h-4, bevelDarker)
}

func (g *game) drawText(screen *ebiten.Image, msg string, x int, y int) {
	if msg == "" {
		return
	}
	img := g.textCache[msg]
	if img == nil {
		w := max(1, len([]rune(msg))*7)
		img = ebiten.NewImage(w, 14)
		ebitenutil.DebugPrintAt(img, msg, 0, 0)
		// Dragging a slider churns the status-bar strings; cap the cache
		// well above a full table plus labels and start over past that.
		if len(g.textCache) > 512 {
			g.textCache = make(map[string]*ebiten.Image, 256)
		}
		g.textCache[msg] = img
	}
	// Embossed shadow (dark offset behind text).
	opS := &ebiten.DrawImageOptions{}
	opS.GeoM.Scale(textScale, textScale)
	opS.GeoM.Translate(float64(x+2), float64(y+2))
	opS.ColorScale.Scale(0, 0, 0, 1)
	screen.DrawImage(img, opS)
	// Main text (white).
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

func shortenEnd(s string, maxChars int) string {
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return string(r[:max(0, maxChars)])
	}
	return string(r[:maxChars-3]) + "..."
}

func shortenMiddle(s string, maxChars int) string {
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	if maxChars <= 7 {
		return shortenEnd(s, maxChars)
	}
	left := (maxChars - 3) / 2
	right := maxChars - 3 - left
	return string(r[:left]) + "..." + string(r[len(r)-right:])
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func main() {
	var (
		initialText string
		initialPath string
	)
	if len(os.Args) > 1 {
		p, err := filepath.Abs(os.Args[1])
		if err != nil {
			log.Fatalf("resolve %q: %v", os.Args[1], err)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			log.Fatalf("read %q: %v", p, err)
		}
		initialText = string(data)
		initialPath = p
	}

	g, err := newGame(initialText, initialPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowW, minWindowH, -1, -1)
	ebiten.SetWindowTitle("Turkish folk fret calculator")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
