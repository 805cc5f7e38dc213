package docstash

// Built-in category tables. These mirror the documentation sources the tool
// was built for: Nuxt framework docs, Nuxt UI component docs, and the
// nuxt-ui-templates example apps. Identifier lookup tables are deliberately
// static and explicitly enumerated so resolution stays deterministic and
// testable; aliases map to the same path and act as independent cache keys.

// NuxtDocs is the Nuxt framework documentation category.
var NuxtDocs = &Category{
	Name:     "nuxt",
	Repo:     "nuxt/nuxt",
	Ref:      "main",
	BasePath: "docs",
	Entries: map[string]string{
		// Getting started
		"introduction":     "1.getting-started/01.introduction.md",
		"installation":     "1.getting-started/02.installation.md",
		"configuration":    "1.getting-started/03.configuration.md",
		"views":            "1.getting-started/04.views.md",
		"assets":           "1.getting-started/05.assets.md",
		"styling":          "1.getting-started/06.styling.md",
		"routing":          "1.getting-started/07.routing.md",
		"seo":              "1.getting-started/08.seo-meta.md",
		"seo-meta":         "1.getting-started/08.seo-meta.md",
		"transitions":      "1.getting-started/09.transitions.md",
		"data-fetching":    "1.getting-started/10.data-fetching.md",
		"datafetching":     "1.getting-started/10.data-fetching.md",
		"state":            "1.getting-started/11.state-management.md",
		"state-management": "1.getting-started/11.state-management.md",
		"error-handling":   "1.getting-started/12.error-handling.md",
		"server":           "1.getting-started/13.server.md",
		"layers":           "1.getting-started/14.layers.md",
		"prerendering":     "1.getting-started/15.prerendering.md",
		"deployment":       "1.getting-started/16.deployment.md",
		"testing":          "1.getting-started/17.testing.md",
		"upgrade":          "1.getting-started/18.upgrade.md",

		// Directory structure
		"directory":           "2.directory-structure/0.index.md",
		"directory-structure": "2.directory-structure/0.index.md",
		"nuxtconfig":          "2.directory-structure/1.nuxt-config.md",
		"nuxt-config":         "2.directory-structure/1.nuxt-config.md",
		"appconfig":           "2.directory-structure/2.app-config.md",
		"app-config":          "2.directory-structure/2.app-config.md",
		"app-vue":             "2.directory-structure/3.app-vue.md",

		// Composables
		"usefetch":         "4.api/2.composables/use-fetch.md",
		"useasyncdata":     "4.api/2.composables/use-async-data.md",
		"usestate":         "4.api/2.composables/use-state.md",
		"useroute":         "4.api/2.composables/use-route.md",
		"userouter":        "4.api/2.composables/use-router.md",
		"usehead":          "4.api/2.composables/use-head.md",
		"useseometa":       "4.api/2.composables/use-seo-meta.md",
		"useruntimeconfig": "4.api/2.composables/use-runtime-config.md",
		"useappconfig":     "4.api/2.composables/use-app-config.md",
		"usenuxtapp":       "4.api/2.composables/use-nuxt-app.md",
		"uselazyfetch":     "4.api/2.composables/use-lazy-fetch.md",
		"uselazyasyncdata": "4.api/2.composables/use-lazy-async-data.md",
		"usecookie":        "4.api/2.composables/use-cookie.md",
		"userequesturl":    "4.api/2.composables/use-request-url.md",

		// Components
		"nuxtpage":    "4.api/1.components/nuxt-page.md",
		"nuxtlayout":  "4.api/1.components/nuxt-layout.md",
		"nuxtlink":    "4.api/1.components/nuxt-link.md",
		"clientonly":  "4.api/1.components/client-only.md",
		"nuxtimg":     "4.api/1.components/nuxt-img.md",
		"nuxtpicture": "4.api/1.components/nuxt-picture.md",

		// Utils
		"$fetch":             "4.api/3.utils/$fetch.md",
		"fetch":              "4.api/3.utils/$fetch.md",
		"definenuxtconfig":   "4.api/3.utils/define-nuxt-config.md",
		"definepagemeta":     "4.api/3.utils/define-page-meta.md",
		"defineeventhandler": "4.api/3.utils/define-event-handler.md",
		"navigateto":         "4.api/3.utils/navigate-to.md",

		// Config reference
		"config":      "4.api/6.nuxt-config.md",
		"nuxt.config": "4.api/6.nuxt-config.md",
	},
}

// UIDocs is the Nuxt UI component documentation category.
var UIDocs = &Category{
	Name:     "ui",
	Repo:     "nuxt/ui",
	Ref:      "v4",
	BasePath: "docs/content/docs/2.components",
	Entries: map[string]string{
		// Form
		"button":        "button.md",
		"checkbox":      "checkbox.md",
		"checkboxgroup": "checkbox-group.md",
		"colorpicker":   "color-picker.md",
		"fileupload":    "file-upload.md",
		"form":          "form.md",
		"formfield":     "form-field.md",
		"fieldgroup":    "field-group.md",
		"input":         "input.md",
		"inputdate":     "input-date.md",
		"inputmenu":     "input-menu.md",
		"inputnumber":   "input-number.md",
		"inputtags":     "input-tags.md",
		"inputtime":     "input-time.md",
		"pinput":        "pin-input.md",
		"radiogroup":    "radio-group.md",
		"select":        "select.md",
		"selectmenu":    "select-menu.md",
		"slider":        "slider.md",
		"switch":        "switch.md",
		"textarea":      "textarea.md",
		"authform":      "auth-form.md",

		// Data
		"accordion": "accordion.md",
		"calendar":  "calendar.md",
		"carousel":  "carousel.md",
		"table":     "table.md",
		"tree":      "tree.md",
		"timeline":  "timeline.md",

		// Navigation
		"breadcrumb":     "breadcrumb.md",
		"commandpalette": "command-palette.md",
		"pagination":     "pagination.md",
		"stepper":        "stepper.md",
		"tabs":           "tabs.md",

		// Overlays
		"contextmenu":  "context-menu.md",
		"drawer":       "drawer.md",
		"dropdownmenu": "dropdown-menu.md",
		"modal":        "modal.md",
		"popover":      "popover.md",
		"slideover":    "slideover.md",
		"tooltip":      "tooltip.md",

		// Feedback
		"alert":    "alert.md",
		"badge":    "badge.md",
		"banner":   "banner.md",
		"empty":    "empty.md",
		"error":    "error.md",
		"progress": "progress.md",
		"skeleton": "skeleton.md",
		"toast":    "toast.md",

		// Layout
		"app":        "app.md",
		"card":       "card.md",
		"container":  "container.md",
		"main":       "main.md",
		"scrollarea": "scroll-area.md",
		"separator":  "separator.md",

		// Media
		"avatar":      "avatar.md",
		"avatargroup": "avatar-group.md",
		"chip":        "chip.md",
		"collapsible": "collapsible.md",
		"icon":        "icon.md",
		"kbd":         "kbd.md",
		"link":        "link.md",
		"user":        "user.md",
		"marquee":     "marquee.md",

		// Color mode
		"colormodeavatar": "color-mode-avatar.md",
		"colormodebutton": "color-mode-button.md",
		"colormodeimage":  "color-mode-image.md",
		"colormodeselect": "color-mode-select.md",
		"colormodeswitch": "color-mode-switch.md",
		"localeselect":    "locale-select.md",

		// Dashboard
		"dashboardgroup":           "dashboard-group.md",
		"dashboardnavbar":          "dashboard-navbar.md",
		"dashboardpanel":           "dashboard-panel.md",
		"dashboardresizehandle":    "dashboard-resize-handle.md",
		"dashboardsearchbutton":    "dashboard-search-button.md",
		"dashboardsearch":          "dashboard-search.md",
		"dashboardsidebarcollapse": "dashboard-sidebar-collapse.md",
		"dashboardsidebartoggle":   "dashboard-sidebar-toggle.md",
		"dashboardsidebar":         "dashboard-sidebar.md",
		"dashboardtoolbar":         "dashboard-toolbar.md",

		// Page
		"page":        "page.md",
		"pageanchors": "page-anchors.md",
		"pageaside":   "page-aside.md",
		"pagebody":    "page-body.md",
		"pagecard":    "page-card.md",
		"pagecolumns": "page-columns.md",
		"pagecta":     "page-cta.md",
		"pagefeature": "page-feature.md",
		"pagegrid":    "page-grid.md",
		"pageheader":  "page-header.md",
		"pagehero":    "page-hero.md",
		"pagelinks":   "page-links.md",
		"pagelist":    "page-list.md",
		"pagelogos":   "page-logos.md",
		"pagesection": "page-section.md",

		// Header/footer
		"header":        "header.md",
		"footer":        "footer.md",
		"footercolumns": "footer-columns.md",

		// Blog
		"blogpost":  "blog-post.md",
		"blogposts": "blog-posts.md",

		// Changelog
		"changelogversion":  "changelog-version.md",
		"changelogversions": "changelog-versions.md",

		// Chat
		"chatmessage":      "chat-message.md",
		"chatmessages":     "chat-messages.md",
		"chatpalette":      "chat-palette.md",
		"chatprompt":       "chat-prompt.md",
		"chatpromptsubmit": "chat-prompt-submit.md",

		// Editor
		"editor":               "editor.md",
		"editordraghandle":     "editor-drag-handle.md",
		"editoremojimenu":      "editor-emoji-menu.md",
		"editormentionmenu":    "editor-mention-menu.md",
		"editorsuggestionmenu": "editor-suggestion-menu.md",
		"editortoolbar":        "editor-toolbar.md",

		// Content
		"contentsearchbutton": "content-search-button.md",
		"contentsearch":       "content-search.md",
		"contentsurround":     "content-surround.md",
		"contenttoc":          "content-toc.md",

		// Pricing
		"pricingplan":  "pricing-plan.md",
		"pricingplans": "pricing-plans.md",
		"pricingtable": "pricing-table.md",
	},
}

// Templates is the nuxt-ui-templates example app category. Identifiers name
// a template and a file within it; the first path segment selects the
// repository inside the organization.
var Templates = &Category{
	Name: "templates",
	Org:  "nuxt-ui-templates",
	Ref:  "main",
	Entries: map[string]string{
		// Dashboard: full dashboard with sidebar, panels, navbar
		"dashboard/app/app.vue":                        "dashboard/app/app.vue",
		"dashboard/app/layouts/default.vue":            "dashboard/app/layouts/default.vue",
		"dashboard/app/composables/usedashboard.ts":    "dashboard/app/composables/useDashboard.ts",
		"dashboard/app/pages/index.vue":                "dashboard/app/pages/index.vue",
		"dashboard/app/pages/inbox.vue":                "dashboard/app/pages/inbox.vue",
		"dashboard/app/components/inbox/inboxlist.vue": "dashboard/app/components/inbox/InboxList.vue",

		// SaaS: auth, pricing, landing
		"saas/app/pages/pricing.vue":   "saas/app/pages/pricing.vue",
		"saas/app/pages/index.vue":     "saas/app/pages/index.vue",
		"saas/app/layouts/default.vue": "saas/app/layouts/default.vue",

		// Landing: marketing landing page
		"landing/app/pages/index.vue":     "landing/app/pages/index.vue",
		"landing/app/components/hero.vue": "landing/app/components/Hero.vue",

		// Chat: AI chatbot
		"chat/app/pages/index.vue":     "chat/app/pages/index.vue",
		"chat/app/components/chat.vue": "chat/app/components/Chat.vue",

		// Docs: documentation site
		"docs/app/layouts/docs.vue": "docs/app/layouts/docs.vue",
		"docs/app/pages/index.vue":  "docs/app/pages/index.vue",

		// Portfolio
		"portfolio/app/pages/index.vue": "portfolio/app/pages/index.vue",

		// Editor: Notion-like WYSIWYG editor
		"editor/app/pages/index.vue":       "editor/app/pages/index.vue",
		"editor/app/components/editor.vue": "editor/app/components/Editor.vue",

		// Changelog
		"changelog/app/pages/index.vue": "changelog/app/pages/index.vue",

		// Starter
		"starter/app/app.vue":    "starter/app/app.vue",
		"starter/nuxt.config.ts": "starter/nuxt.config.ts",
	},
}

// Categories returns all built-in categories.
func Categories() []*Category {
	return []*Category{NuxtDocs, UIDocs, Templates}
}

// CategoryByName looks up a built-in category by name.
// Returns ENOTFOUND for unknown names.
func CategoryByName(name string) (*Category, error) {
	for _, c := range Categories() {
		if c.Name == Normalize(name) {
			return c, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "unknown category %q", name)
}
