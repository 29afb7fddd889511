// internal/app/bootstrap/dispatch.go
package bootstrap

import (
	"strings"

	"github.com/Krill-lover/welccom/internal/app/bot"
	"github.com/Krill-lover/welccom/internal/app/features/adminpanel"
	"github.com/Krill-lover/welccom/internal/app/features/browse"
	"github.com/Krill-lover/welccom/internal/app/system/access"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// dispatcher routes incoming Telegram updates to the feature handlers.
//
// Commands and text aliases go to the browse handler, callback buttons
// are decoded once into an Action and switched on, and free-form text
// from an admin with an open submission draft feeds the wizard.
type dispatcher struct {
	browse *browse.Handler
	admin  *adminpanel.Handler
	admins access.AdminList
	gate   bot.Gateway
	log    *zap.Logger
}

func newDispatcher(b *browse.Handler, a *adminpanel.Handler, admins access.AdminList, gate bot.Gateway, logger *zap.Logger) *dispatcher {
	return &dispatcher{browse: b, admin: a, admins: admins, gate: gate, log: logger}
}

// Handle is the single entry point the poller feeds updates into.
func (d *dispatcher) Handle(u tgbotapi.Update) {
	switch {
	case u.CallbackQuery != nil:
		d.handleCallback(u.CallbackQuery)
	case u.Message != nil:
		d.handleMessage(u.Message)
	}
}

func (d *dispatcher) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		d.handleCommand(msg)
		return
	}

	// An admin with an open submission draft gets their text and files
	// routed to the wizard. Commands above still take priority so /start
	// always works.
	if d.admins.IsAdmin(msg.From.ID) && d.admin.Sessions.Active(msg.From.ID) {
		d.admin.HandleMessage(msg)
		return
	}

	switch strings.ToLower(strings.TrimSpace(msg.Text)) {
	case "меню", "начать", "start", "главное меню":
		d.browse.MainMenu(msg)
	case "помощь", "help", "справка":
		d.browse.Help(msg)
	case "админ", "admin", "админка":
		d.admin.ShowPanelCmd(msg)
	case "последние", "новые", "recent":
		d.browse.Recent(msg)
	case "материалы", "предметы", "все предметы":
		d.browse.Subjects(msg)
	case "id", "айди", "мой id":
		d.browse.WhoAmI(msg)
	default:
		d.browse.Unknown(msg)
	}
}

func (d *dispatcher) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		d.browse.Start(msg)
	case "menu":
		d.browse.MainMenu(msg)
	case "help":
		d.browse.Help(msg)
	case "id":
		d.browse.WhoAmI(msg)
	case "recent":
		d.browse.Recent(msg)
	case "admin":
		d.admin.ShowPanelCmd(msg)
	default:
		d.browse.Unknown(msg)
	}
}

func (d *dispatcher) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}
	a := bot.ParseAction(cb.Data)

	switch a.Kind {
	case bot.KindMainMenu:
		d.browse.ShowMainMenu(cb)
	case bot.KindHelp:
		d.browse.ShowHelp(cb)
	case bot.KindAllSubjects:
		d.browse.ShowSubjects(cb)
	case bot.KindRecent:
		d.browse.ShowRecent(cb)
	case bot.KindSubject:
		d.browse.ShowSubject(cb, a)
	case bot.KindGroup:
		d.browse.ShowGroupMaterials(cb, a)
	case bot.KindMaterialType:
		d.browse.ShowTypeMaterials(cb, a)
	case bot.KindMaterial:
		d.browse.ShowMaterial(cb, a)
	case bot.KindMaterialBack:
		d.browse.BackToList(cb, a)

	case bot.KindAdminPanel:
		d.admin.ShowPanel(cb)
	case bot.KindAdminStats:
		d.admin.ShowStats(cb)
	case bot.KindDetailedStats:
		d.admin.ShowDetailedStats(cb)
	case bot.KindUsersStats:
		d.admin.ShowUsersStats(cb)
	case bot.KindPopularMaterials:
		d.admin.ShowPopularMaterials(cb)
	case bot.KindManageMaterials:
		d.admin.Manage(cb)
	case bot.KindDeleteAsk:
		d.admin.ConfirmDelete(cb, a)
	case bot.KindDelete:
		d.admin.Delete(cb, a)

	case bot.KindAddMaterial:
		d.admin.StartWizard(cb)
	case bot.KindWizardSubject:
		d.admin.ChooseSubject(cb, a)
	case bot.KindWizardGroup:
		d.admin.ChooseGroup(cb, a)
	case bot.KindWizardType:
		d.admin.ChooseType(cb, a)
	case bot.KindWizardBack:
		d.admin.Back(cb)
	case bot.KindCancel:
		d.admin.Cancel(cb, browse.MainMenuKeyboard(d.admins.IsAdmin(cb.From.ID)))

	default:
		d.log.Debug("unknown callback action", zap.String("data", cb.Data))
		d.gate.AnswerCallback(cb.ID, "⚠️ Неизвестное действие")
		return
	}

	// Clear the client-side spinner. Handlers that already answered with
	// an alert make this a no-op the gateway logs at debug.
	d.gate.AnswerCallback(cb.ID, "")
}
