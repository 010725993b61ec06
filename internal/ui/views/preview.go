package views

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"

	"filegrip/internal/domain"
	"filegrip/internal/thumbnails"
	"filegrip/internal/ui/mouse"
)

const maxScaledImages = 256

type scaledKey struct {
	id   string
	w, h int
}

// HalfBlocks scales img to w columns and h lines. Each cell shows two pixels
// stacked with the upper half block: foreground on top, background below.
func HalfBlocks(img image.Image, w, h int) [][]lipgloss.Style {
	if img == nil || w <= 0 || h <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	// Keep the aspect ratio; a cell is about twice as tall as wide, which
	// the two pixel rows per cell already account for.
	tw, th := w, 2*h
	if b.Dx()*th > b.Dy()*tw {
		th = b.Dy() * tw / b.Dx()
	} else {
		tw = b.Dx() * th / b.Dy()
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	rows := make([][]lipgloss.Style, (th+1)/2)
	for cy := range rows {
		row := make([]lipgloss.Style, tw)
		for x := 0; x < tw; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(dst.At(x, 2*cy)))
			if 2*cy+1 < th {
				style = style.Background(hexColor(dst.At(x, 2*cy+1)))
			}
			row[x] = style
		}
		rows[cy] = row
	}
	return rows
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// drawImage renders a thumbnail centred in the given box
func (r *Renderer) drawImage(c *Canvas, img *thumbnails.Image, x, y, w, h int) {
	key := scaledKey{id: img.ID, w: w, h: h}
	rows, ok := r.scaled[key]
	if !ok {
		rows = HalfBlocks(img.Decoded, w, h)
		if len(r.scaled) >= maxScaledImages {
			r.scaled = make(map[scaledKey][][]lipgloss.Style)
		}
		r.scaled[key] = rows
	}
	if len(rows) == 0 {
		return
	}
	offX := (w - len(rows[0])) / 2
	offY := (h - len(rows)) / 2
	for cy, row := range rows {
		for cx := range row {
			c.Set(x+offX+cx, y+offY+cy, "▀", &row[cx])
		}
	}
}

func (r *Renderer) drawPreview(c *Canvas, s ViewState, area mouse.Rect) {
	for y := area.Y; y < area.Y+area.H; y++ {
		c.Set(area.X-1, y, "│", &r.styles.Separator)
	}
	c.Clip(area)
	defer c.Unclip()

	if s.Preview == nil {
		c.Put(area.X+1, area.Y, "Nothing selected", &r.styles.Dim)
		return
	}
	item := *s.Preview
	y := area.Y

	imageLines := 0
	if item.HasThumbnail {
		imageLines = area.H / 2
		if imageLines > area.W/2 {
			imageLines = area.W / 2
		}
		var img *thumbnails.Image
		if s.Thumbnail != nil {
			img = s.Thumbnail(item.ID)
		}
		if img != nil && img.Decoded != nil {
			r.drawImage(c, img, area.X+1, y, area.W-2, imageLines)
		} else {
			c.Put(area.X+1, y, "Loading preview…", &r.styles.Dim)
		}
		y += imageLines + 1
	}

	c.Put(area.X+1, y, runewidth.Truncate(Icon(item)+" "+item.Name, area.W-2, "…"), &r.styles.Title)
	y += 2
	lines := previewDetails(item, r)
	for _, l := range lines {
		c.Put(area.X+1, y, runewidth.Truncate(l, area.W-2, "…"), &r.styles.Detail)
		y++
	}
}

func previewDetails(item domain.Item, r *Renderer) []string {
	var lines []string
	if item.IsDir {
		lines = append(lines, "Kind      folder")
	} else {
		kind := item.Ext
		if kind == "" {
			kind = "file"
		}
		lines = append(lines,
			"Kind      "+kind,
			fmt.Sprintf("Size      %s (%s bytes)", SizeLabel(item), humanize.Comma(item.Size)),
		)
	}
	if item.Modified != nil {
		lines = append(lines,
			"Modified  "+ModifiedLabel(item, r.now()),
			"          "+item.Modified.Format("2006-01-02 15:04"),
		)
	}
	lines = append(lines, "", item.Path)
	return lines
}
