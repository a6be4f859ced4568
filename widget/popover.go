package widget

import "strings"

const (
	DefaultPopoverPlacement = "right"

	popoverClass     = "popover popover-x popover-default"
	popoverArrow     = `<div class="arrow"></div>`
	popoverToggleTag = "button"
)

type bootstrapPopover struct{}

// RenderPopover renders a toggle and a hidden dialog in a manner of
// bootstrap-popover-x: toggle points to the dialog with data-target.
func (bootstrapPopover) RenderPopover(spec PopoverSpec) string {
	placement := spec.Placement
	if placement == "" {
		placement = DefaultPopoverPlacement
	}

	toggleTag := spec.ToggleTag
	if toggleTag == "" {
		toggleTag = popoverToggleTag
	}

	toggleAttrs := spec.ToggleAttrs.clone()
	toggleAttrs["data-toggle"] = "popover-x"
	toggleAttrs["data-target"] = "#" + spec.ID
	toggleAttrs["data-placement"] = placement

	if toggleTag == popoverToggleTag {
		toggleAttrs.setDefault("type", "button")
	}

	classes := []string{popoverClass}
	if spec.Size != "" {
		classes = append(classes, "popover-"+spec.Size)
	}

	dialogAttrs := spec.Attrs.clone()
	if class, ok := dialogAttrs["class"]; ok && class != "" {
		classes = append(classes, class)
	}

	dialogAttrs["class"] = strings.Join(classes, " ")
	dialogAttrs["id"] = spec.ID
	dialogAttrs["role"] = "dialog"

	body := popoverArrow
	if spec.Header != "" {
		body += renderTag("div", spec.Header, Attrs{"class": "popover-header popover-title"})
	}

	body += renderTag("div", spec.Content, Attrs{"class": "popover-body popover-content"})

	return renderTag(toggleTag, spec.Toggle, toggleAttrs) + renderTag("div", body, dialogAttrs)
}

// BootstrapPopover returns a default popover renderer.
func BootstrapPopover() PopoverRenderer {
	return bootstrapPopover{}
}
