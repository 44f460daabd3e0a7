package version

var (
	AppName     = "Barkeep"
	AppFullName = "Barkeep — pub games, polls and bar talk for your server"
	AppVersion  = "dev"
)
