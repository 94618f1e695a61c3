package tui

import (
	"errors"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/picture"
)

const keyCtrlC = "ctrl+c"

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case toastTickMsg:
		return m.handleToastTick(msg)
	case slideTickMsg:
		return m.handleSlideTick(msg)
	case notificationMsg:
		return m.handleNotification(msg)
	case contentChangedMsg:
		return m, tea.Batch(m.reloadContent(), waitForChange(m.changes))
	case contentReloadedMsg:
		return m.handleContentReloaded(msg)
	case openResultMsg:
		return m.handleOpenResult(msg)
	}
	return m, nil
}

// --- Window ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.viewport.SetWidth(msg.Width)
	m.viewport.SetHeight(m.contentHeight())
	m.modals.SetSize(msg.Width, msg.Height)
	m.refreshPage()

	// Publish startup warnings on the first WindowSizeMsg
	if len(m.startupWarnings) > 0 {
		for _, w := range m.startupWarnings {
			m.notifyBus.Warnf("%s", w)
		}
		m.startupWarnings = nil
		return m, m.ensureToastTick()
	}
	return m, nil
}

// --- Ticks ---

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick()
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

func (m Model) handleSlideTick(_ slideTickMsg) (tea.Model, tea.Cmd) {
	if m.slide.Tick() {
		return m, scheduleSlideTick()
	}
	return m, nil
}

func (m Model) handleNotification(msg notificationMsg) (tea.Model, tea.Cmd) {
	m.notifyBus.Publish(msg.notification)
	return m, m.ensureToastTick()
}

// --- Content ---

func (m Model) handleContentReloaded(msg contentReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.notifyError("reload content: %v", msg.err)
	}
	m.site = msg.site
	m.refreshPage()
	return m, m.notifyInfo("content reloaded from %s", m.loader.Source())
}

func (m Model) handleOpenResult(msg openResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.notifyError("open %s: %v", msg.target, msg.err)
	}
	return m, m.notifyInfo("opened %s", msg.target)
}

// --- Input ---

func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == keyCtrlC {
		return m.quit()
	}

	switch {
	case m.modals.Confirm != nil:
		return m.handleConfirmKey(msg)
	case m.modals.Help != nil:
		return m.handleHelpKey(keyStr)
	case m.modals.Notification != nil:
		return m.handleNotificationModalKey(keyStr)
	case m.store.IsOpen():
		return m.handleGalleryKey(msg)
	case m.modals.Detail != nil:
		return m.handleDetailKey(msg)
	}
	return m.handlePageKey(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modals.Confirm.Update(msg)
	*m.modals.Confirm = modal

	switch {
	case modal.Confirmed():
		target := m.modals.PendingOpen
		m.modals.DismissConfirm()
		return m, m.openTarget(target)
	case modal.Cancelled():
		m.modals.DismissConfirm()
	}
	return m, cmd
}

func (m Model) handleHelpKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc", "q", "?":
		m.modals.DismissHelp()
	}
	return m, nil
}

func (m Model) handleNotificationModalKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc", "q", "n":
		m.modals.DismissNotifications()
	case "j", "down":
		m.modals.Notification.ScrollDown()
	case "k", "up":
		m.modals.Notification.ScrollUp()
	case "D":
		m.modals.Notification.Clear()
	}
	return m, nil
}

// handleGalleryKey routes keys while the lightbox is open. Keys the
// lightbox does not use are swallowed so the page below stays put.
func (m Model) handleGalleryKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	before := m.store.ActiveIndex()
	if m.keyboard.Handle(msg) {
		if m.store.IsOpen() && m.store.ActiveIndex() != before && m.slide.Start(m.store.LastDirection()) {
			return m, scheduleSlideTick()
		}
		if !m.store.IsOpen() {
			m.slide.Clear()
		}
		return m, nil
	}

	active, ok := m.store.Active()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyText(active.Locator)
	case key.Matches(msg, m.keys.OpenLink):
		target, err := m.pictures.Resolve(active.Locator)
		switch {
		case errors.Is(err, picture.ErrRemote):
			target = active.Locator
		case err != nil:
			return m, m.notifyError("open image: %v", err)
		}
		m.modals.ShowConfirm("Open image?", target)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	d := m.modals.Detail
	k := m.detailKeys

	switch {
	case key.Matches(msg, k.Close):
		m.modals.DismissDetail()
	case key.Matches(msg, k.Down):
		d.modal.ScrollDown()
	case key.Matches(msg, k.Up):
		d.modal.ScrollUp()
	case key.Matches(msg, k.Gallery):
		if len(d.album) == 0 {
			return m, m.notifyInfo("no photos to show")
		}
		album := d.album
		if d.leaveOnAlbum {
			m.modals.DismissDetail()
		}
		return m, m.openGallery(album, 0)
	case key.Matches(msg, k.Image):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n > len(d.images) {
			return m, nil
		}
		return m, m.openGallery(d.images, n-1)
	case key.Matches(msg, k.Copy):
		if d.link != "" {
			d.modal.SetStatus("copied " + d.link)
		}
		return m, m.copyText(d.link)
	case key.Matches(msg, k.OpenLink):
		if d.link == "" {
			return m, m.notifyInfo("no link to open")
		}
		m.modals.ShowConfirm("Open link?", d.link)
	}
	return m, nil
}

func (m Model) handlePageKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.NextPage):
		m.movePage(1)
	case key.Matches(msg, k.PrevPage):
		m.movePage(-1)
	case key.Matches(msg, k.JumpPage):
		n, _ := strconv.Atoi(msg.String())
		if pages := m.navPages(); n >= 1 && n <= len(pages) {
			m.setPage(pages[n-1])
		}
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.PageUp):
		m.scrollPage(-max(m.contentHeight()-1, 1))
	case key.Matches(msg, k.PageDown):
		m.scrollPage(max(m.contentHeight()-1, 1))
	case key.Matches(msg, k.Open):
		return m.activate()
	case key.Matches(msg, k.Gallery):
		return m.galleryForCurrent()
	case key.Matches(msg, k.Copy):
		return m, m.copyText(m.linkForCurrent())
	case key.Matches(msg, k.OpenLink):
		if link := m.linkForCurrent(); link != "" {
			m.modals.ShowConfirm("Open link?", link)
			return m, nil
		}
		return m, m.notifyInfo("no link to open")
	case key.Matches(msg, k.Theme):
		return m, m.applyTheme(styles.NextTheme(m.theme))
	case key.Matches(msg, k.Reload):
		return m, m.reloadContent()
	case key.Matches(msg, k.Help):
		m.modals.ShowHelp("Keys", m.helpSections())
	case key.Matches(msg, k.Notifications):
		m.modals.ShowNotifications(m.notifyBus)
	}
	return m, nil
}

// scrollPage moves the page viewport unless an overlay holds the scroll lock.
func (m *Model) scrollPage(lines int) {
	if m.gate.Locked() {
		logger := logging.Component("tui")
		logger.Debug().Strs("owners", m.gate.Owners()).Msg("page scroll ignored while locked")
		return
	}
	if lines > 0 {
		m.viewport.ScrollDown(lines)
	} else {
		m.viewport.ScrollUp(-lines)
	}
}

// activate performs the primary action of the card under the cursor.
func (m Model) activate() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}

	site := m.site
	switch item.kind {
	case itemHero:
		m.modals.ShowConfirm("Open link?", site.HeroButtons[item.index].Href)
	case itemNews:
		m.news.Select(site.News[item.index])
		n, _ := m.news.Selected()
		m.showDetail(newsDetail(n), m.news.Clear)
	case itemMember:
		m.members.Select(site.Team[item.index])
		t, _ := m.members.Selected()
		m.showDetail(memberDetail(t), m.members.Clear)
	case itemAnnouncement:
		m.announcements.Select(site.Announcements[item.index])
		a, _ := m.announcements.Selected()
		m.showDetail(announcementDetail(a), m.announcements.Clear)
	case itemEvent:
		m.events.Select(site.Events[item.index])
		e, _ := m.events.Selected()
		m.showDetail(eventDetail(site, e), m.events.Clear)
	case itemAlbum:
		return m, m.openGallery(site.Albums[item.index].Refs(), 0)
	case itemAlumni:
		m.alumni.Select(site.Alumni[item.group].Members[item.index])
		a, _ := m.alumni.Selected()
		m.showDetail(alumniDetail(a), m.alumni.Clear)
	case itemContact:
		return m, m.copyText(site.Contact[item.index].Value)
	}
	return m, nil
}

func (m *Model) showDetail(d *detailView, clear func()) {
	d.clear = clear
	m.modals.ShowDetail(d)
}

// galleryForCurrent opens the photos behind the card under the cursor.
func (m Model) galleryForCurrent() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}

	switch item.kind {
	case itemEvent:
		images, ok := m.site.EventGallery(m.site.Events[item.index])
		if !ok {
			return m, m.notifyInfo("no photos to show")
		}
		return m, m.openGallery(images, 0)
	case itemAlbum:
		return m, m.openGallery(m.site.Albums[item.index].Refs(), 0)
	case itemAnnouncement:
		return m, m.openGallery(imageRefs(m.site.Announcements[item.index].Images), 0)
	}
	return m, nil
}

// linkForCurrent returns the outbound link of the card under the cursor.
func (m Model) linkForCurrent() string {
	item, ok := m.currentItem()
	if !ok {
		return ""
	}

	site := m.site
	switch item.kind {
	case itemHero:
		return site.HeroButtons[item.index].Href
	case itemNews:
		return site.News[item.index].Link
	case itemMember:
		return memberDetail(site.Team[item.index]).link
	case itemAnnouncement:
		return site.Announcements[item.index].Link
	case itemAlumni:
		return alumniDetail(site.Alumni[item.group].Members[item.index]).link
	case itemContact:
		return site.Contact[item.index].Value
	}
	return ""
}

// --- Mouse ---

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft || m.modals.HasDialog() {
		return m, nil
	}

	if m.store.IsOpen() {
		return m.handleLightboxClick(msg.X, msg.Y)
	}

	if d := m.modals.Detail; d != nil {
		x, y, w, h := d.modal.Bounds(m.width, m.height)
		if !(rect{x, y, w, h}).contains(msg.X, msg.Y) {
			m.modals.DismissDetail()
		}
		return m, nil
	}

	if msg.Y == 1 {
		if page, ok := m.tabAt(msg.X); ok {
			m.setPage(page)
		}
		return m, nil
	}

	if msg.Y >= headerHeight && msg.Y < headerHeight+m.contentHeight() {
		line := msg.Y - headerHeight + m.viewport.YOffset()
		if i := m.rendered.cardAt(line); i >= 0 {
			m.cursors[m.page] = i
			m.refreshPage()
			return m.activate()
		}
	}
	return m, nil
}

func (m Model) handleLightboxClick(x, y int) (tea.Model, tea.Cmd) {
	layout := layoutLightbox(m.store, m.thumbs, m.width, m.height, m.cfg.Gallery.ThumbnailWidth)
	before := m.store.ActiveIndex()

	hit, index := layout.hit(x, y)
	switch hit {
	case hitBackground, hitClose:
		m.store.Close()
		m.slide.Clear()
		return m, nil
	case hitPrev:
		m.store.Prev()
	case hitNext:
		m.store.Next()
	case hitThumbnail:
		m.thumbs.Select(index)
	case hitNone:
		return m, nil
	}

	if m.store.ActiveIndex() != before && m.slide.Start(m.store.LastDirection()) {
		return m, scheduleSlideTick()
	}
	return m, nil
}

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	down := msg.Button == tea.MouseWheelDown
	up := msg.Button == tea.MouseWheelUp

	switch {
	case m.modals.Notification != nil:
		if down {
			m.modals.Notification.ScrollDown()
		} else if up {
			m.modals.Notification.ScrollUp()
		}
	case m.store.IsOpen(), m.modals.HasDialog():
	case m.modals.Detail != nil:
		if down {
			m.modals.Detail.modal.ScrollDown()
		} else if up {
			m.modals.Detail.modal.ScrollUp()
		}
	case down:
		m.scrollPage(wheelStep)
	case up:
		m.scrollPage(-wheelStep)
	}
	return m, nil
}

// tabAt returns the page whose tab covers column x of the tab row.
func (m Model) tabAt(x int) (content.Page, bool) {
	_, spans := m.renderTabs()
	pages := m.navPages()
	for i, s := range spans {
		if x >= s.start && x < s.end {
			return pages[i], true
		}
	}
	return "", false
}
