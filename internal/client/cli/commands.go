package cli

import "github.com/dmitrijs2005/ecocollect/internal/client/models"

func (a *App) commands() []command {
	declarer := models.Role.DeclaresWaste
	collector := models.Role.CollectsWaste
	recycler := models.Role.RecyclesWaste

	return []command{
		{name: "register", help: "create an account", scope: anonymous, run: a.register},
		{name: "login", help: "sign in", scope: anonymous, run: a.login},

		{name: "home", help: "dashboard for your account", scope: signedIn, run: a.home},
		{name: "profile", help: "show your profile", scope: signedIn, run: a.profile},
		{name: "edit-profile", help: "change username, phone or location", scope: signedIn, run: a.editProfile},
		{name: "location", usage: "[lat lon]", help: "set your GPS position", scope: signedIn, run: a.location},
		{name: "refresh", help: "reload your profile", scope: signedIn, run: a.refresh},
		{name: "verify-phone", help: "receive and enter an SMS code", scope: signedIn, run: a.verifyPhone},
		{name: "upload-docs", help: "send identity documents", scope: signedIn, allow: models.Role.RequiresDocuments, run: a.uploadDocs},
		{name: "pro-verify", help: "submit company details", scope: signedIn, allow: models.Role.RequiresProfessionalVerification, run: a.proVerify},

		{name: "declare", help: "declare waste for collection", scope: signedIn, allow: declarer, run: a.declare},
		{name: "history", usage: "[category= date= location= min= max=]", help: "your declarations", scope: signedIn, allow: declarer, run: a.history},
		{name: "waste", usage: "<id>", help: "show one declaration", scope: signedIn, run: a.waste},

		{name: "available", usage: "[category= date= location= min= max=]", help: "waste open for recycling", scope: signedIn, allow: recycler, run: a.available},
		{name: "reserve", usage: "<waste-id> <YYYY-MM-DD> [HH:MM]", help: "book a pickup", scope: signedIn, allow: recycler, run: a.reserve},
		{name: "appointments", usage: "[status]", help: "your pickup bookings", scope: signedIn, allow: recycler, run: a.appointments},
		{name: "cancel-appointment", usage: "<id>", help: "cancel a booking", scope: signedIn, allow: recycler, run: a.cancelAppointment},

		{name: "missions", usage: "[status= date= zone=]", help: "your collection missions", scope: signedIn, allow: collector, run: a.missions},
		{name: "accept", usage: "<id>", help: "accept a mission", scope: signedIn, allow: collector, run: a.accept},
		{name: "reject", usage: "<id>", help: "reject a mission", scope: signedIn, allow: collector, run: a.reject},
		{name: "collect", usage: "<id>", help: "mark a mission collected", scope: signedIn, allow: collector, run: a.collect},
		{name: "collect-all", help: "mark every accepted mission collected", scope: signedIn, allow: collector, run: a.collectAll},
		{name: "availability", usage: "[on|off]", help: "show or change availability", scope: signedIn, allow: collector, run: a.availability},
		{name: "schedules", usage: "[day= zone=]", help: "your working hours", scope: signedIn, allow: collector, run: a.schedules},
		{name: "schedule-add", help: "add working hours", scope: signedIn, allow: collector, run: a.scheduleAdd},
		{name: "schedule-edit", usage: "<id>", help: "change working hours", scope: signedIn, allow: collector, run: a.scheduleEdit},
		{name: "schedule-del", usage: "<id>", help: "remove working hours", scope: signedIn, allow: collector, run: a.scheduleDelete},

		{name: "logout", help: "sign out", scope: signedIn, run: a.logout},
	}
}
