package discord

import "github.com/Domje/Arc-Looterputer/internal/handler"

// Friendly message constants for Discord responses
const (
	// Catalog
	MsgItemNotFound = "❓ **Item Not Found**\nMaybe check the spelling, or try `/search`."
	MsgNoRecipe     = "🛠️ **No Recipe**\nThat item can't be crafted."

	// Hideout
	MsgModuleNotFound = "🏚️ **Station Not Found**\nUse `/hideout` without arguments to list stations."
	MsgLevelNotFound  = "📶 **Level Not Found**\nThat station doesn't have that level."

	// Shopping list
	MsgListUnavailable = "📦 **Shopping List Unavailable**\nStorage is down, try again in a bit."
	MsgListEmpty       = "Your shopping list is empty."
	MsgNotAllowed      = "🔒 **Not Allowed**\nThe bot isn't authorised to change the shopping list."

	MsgAPIUnreachable = "📡 Can't reach the Looterputer right now."
	MsgGenericError   = "❌ Something went wrong."
)

// friendlyMessages maps API error texts to the message shown in Discord
var friendlyMessages = map[string]string{
	handler.ErrMsgItemNotFoundError:  MsgItemNotFound,
	handler.ErrMsgNoRecipeError:      MsgNoRecipe,
	handler.ErrMsgModuleNotFoundErr:  MsgModuleNotFound,
	handler.ErrMsgLevelNotFoundError: MsgLevelNotFound,
	handler.ErrMsgStorageError:       MsgListUnavailable,
}
