// Package commands adapts the raw execute(name, version, body) surface
// of session.Session, connection.Connection, and pool.Pool into a
// typed RCON command set, grounded on hllrcon's RconCommands. Each
// method is a thin shim: it shapes a request body for the requested
// protocol version and, where the raw response needs interpreting,
// decodes it into a bool or a JSON value.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hllrcon/rcon-go/rconerrors"
	"github.com/hllrcon/rcon-go/wire"
)

// Executor is satisfied by session.Session, connection.Connection, and
// pool.Pool: anything that can run one named command and return its
// raw response.
type Executor interface {
	Execute(ctx context.Context, name string, version int, body string) (wire.Response, error)
}

// Commands is a typed RCON command surface built on top of an
// Executor. The zero value is not usable; construct with New.
type Commands struct {
	exec Executor
}

// New wraps an Executor with the typed command surface.
func New(exec Executor) *Commands {
	return &Commands{exec: exec}
}

func (c *Commands) execute(ctx context.Context, name string, version int, body string) (wire.Response, error) {
	return c.exec.Execute(ctx, name, version, body)
}

func errUnsupportedV1(op string) error {
	return fmt.Errorf("%s: %w", op, rconerrors.ErrUnsupportedVersion)
}

// AddAdmin adds a player to an admin group. Groups are defined in the
// server's own configuration; comment usually identifies the admin by
// name.
func (c *Commands) AddAdmin(ctx context.Context, playerID, adminGroup, comment string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "adminadd", version, playerID+" "+adminGroup+" "+comment)
		return err
	}
	body, err := marshalBody(map[string]string{"PlayerId": playerID, "AdminGroup": adminGroup, "Comment": comment})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "AddAdmin", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveAdmin removes a player from their admin group.
func (c *Commands) RemoveAdmin(ctx context.Context, playerID string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "admindel", version, playerID)
		return err
	}
	body, err := marshalBody(map[string]string{"PlayerId": playerID})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveAdmin", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// ChangeMap starts a 60-second countdown to change the current map.
func (c *Commands) ChangeMap(ctx context.Context, mapName string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "map", version, mapName)
		return err
	}
	body, err := marshalBody(map[string]string{"MapName": mapName})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "ChangeMap", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// GetAvailableMaps returns the JSON-decoded response describing the
// server's known maps, as reported by the server's
// GetClientReferenceData command for AddMapToRotation. The command
// surface does not impose a fixed schema on the result: it is returned
// as a generic map.
func (c *Commands) GetAvailableMaps(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get available maps")
	}
	resp, err := c.execute(ctx, "GetClientReferenceData", version, "AddMapToRotation")
	var result map[string]any
	if err := decodeInto(resp, err, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCommandDetails retrieves metadata about a specific command,
// including its dialogue parameters.
func (c *Commands) GetCommandDetails(ctx context.Context, command string, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get command details")
	}
	resp, err := c.execute(ctx, "GetClientReferenceData", version, command)
	var result map[string]any
	if err := decodeInto(resp, err, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAdminLog retrieves admin log entries from the last secondsSpan
// seconds, optionally filtered. Under v1, filter is ignored and
// secondsSpan is rounded down to whole minutes.
func (c *Commands) GetAdminLog(ctx context.Context, secondsSpan int, filter string, version int) (string, error) {
	if secondsSpan < 0 {
		return "", fmt.Errorf("seconds span must be non-negative")
	}
	if version != 2 {
		resp, err := c.execute(ctx, "showlog", version, itoa(secondsSpan/60))
		if err != nil {
			return "", err
		}
		return resp.ContentBody, nil
	}
	body, err := marshalBody(map[string]any{"LogBackTrackTime": secondsSpan, "Filters": filter})
	if err != nil {
		return "", err
	}
	resp, err := c.execute(ctx, "GetAdminLog", version, body)
	if err != nil {
		return "", err
	}
	if err := resp.RaiseForStatus(); err != nil {
		return "", err
	}
	return resp.ContentBody, nil
}

// GetAvailableSectorNames retrieves the five sector name choices for
// the current map, read from SetSectorLayout's dialogue parameters.
func (c *Commands) GetAvailableSectorNames(ctx context.Context, version int) ([][]string, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get available sector names")
	}
	details, err := c.GetCommandDetails(ctx, "SetSectorLayout", version)
	if err != nil {
		return nil, err
	}
	params, ok := details["dialogueParameters"].([]any)
	if !ok || len(params) < 5 {
		return nil, fmt.Errorf("parsing sector names: %w", rconerrors.ErrMessage)
	}
	sectors := make([][]string, 5)
	for i := 0; i < 5; i++ {
		p, ok := params[i].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parsing sector name %d: %w", i, rconerrors.ErrMessage)
		}
		value, _ := p["valueMember"].(string)
		sectors[i] = splitComma(value)
	}
	return sectors, nil
}

// SetSectorLayout immediately restarts the map with the given sector
// layout.
func (c *Commands) SetSectorLayout(ctx context.Context, sector1, sector2, sector3, sector4, sector5 string, version int) error {
	if version != 2 {
		return errUnsupportedV1("set sector layout")
	}
	body, err := marshalBody(map[string]string{
		"Sector_1": sector1, "Sector_2": sector2, "Sector_3": sector3,
		"Sector_4": sector4, "Sector_5": sector5,
	})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetSectorLayout", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// AddMapToRotation inserts a map into the rotation at index.
func (c *Commands) AddMapToRotation(ctx context.Context, mapName string, index int, version int) error {
	if version != 2 {
		return errUnsupportedV1("add map to rotation")
	}
	body, err := marshalBody(map[string]any{"MapName": mapName, "Index": index})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "AddMapToRotation", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveMapFromRotation removes the map at index from the rotation.
func (c *Commands) RemoveMapFromRotation(ctx context.Context, index int, version int) error {
	if version != 2 {
		return errUnsupportedV1("remove map from rotation")
	}
	body, err := marshalBody(map[string]any{"Index": index})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveMapFromRotation", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// AddMapToSequence inserts a map into the map sequence at index.
func (c *Commands) AddMapToSequence(ctx context.Context, mapName string, index int, version int) error {
	if version != 2 {
		return errUnsupportedV1("add map to sequence")
	}
	body, err := marshalBody(map[string]any{"MapName": mapName, "Index": index})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "AddMapToSequence", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveMapFromSequence removes the map at index from the map sequence.
func (c *Commands) RemoveMapFromSequence(ctx context.Context, index int, version int) error {
	if version != 2 {
		return errUnsupportedV1("remove map from sequence")
	}
	body, err := marshalBody(map[string]any{"Index": index})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveMapFromSequence", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetMapShuffleEnabled toggles whether the map sequence is shuffled.
func (c *Commands) SetMapShuffleEnabled(ctx context.Context, enabled bool, version int) error {
	if version != 2 {
		return errUnsupportedV1("set map shuffle enabled")
	}
	body, err := marshalBody(map[string]bool{"Enable": enabled})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "ShuffleMapSequence", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// MoveMapInSequence moves the map at oldIndex to newIndex within the
// map sequence.
func (c *Commands) MoveMapInSequence(ctx context.Context, oldIndex, newIndex int, version int) error {
	if version != 2 {
		return errUnsupportedV1("move map in sequence")
	}
	body, err := marshalBody(map[string]int{"CurrentIndex": oldIndex, "NewIndex": newIndex})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "MoveMapInSequence", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// GetCommands retrieves a description of every command the server
// supports.
func (c *Commands) GetCommands(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get commands")
	}
	resp, err := c.execute(ctx, "GetDisplayableCommands", version, "")
	var result map[string]any
	if err := decodeInto(resp, err, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetMapRotation retrieves the current map rotation.
func (c *Commands) GetMapRotation(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get map rotation")
	}
	return c.getServerInformation(ctx, "maprotation", "", version)
}

// GetMapSequence retrieves the current map sequence.
func (c *Commands) GetMapSequence(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get map sequence")
	}
	return c.getServerInformation(ctx, "mapsequence", "", version)
}

// GetServerSession retrieves information about the current session
// (map, player counts, elapsed time).
func (c *Commands) GetServerSession(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get server session")
	}
	return c.getServerInformation(ctx, "session", "", version)
}

// GetServerConfig retrieves the server's current configuration.
func (c *Commands) GetServerConfig(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get server config")
	}
	return c.getServerInformation(ctx, "serverconfig", "", version)
}

// GetBannedWords retrieves the server's list of banned words.
func (c *Commands) GetBannedWords(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		return nil, errUnsupportedV1("get banned words")
	}
	return c.getServerInformation(ctx, "bannedwords", "", version)
}

// GetPlayer retrieves detailed information about one connected player.
func (c *Commands) GetPlayer(ctx context.Context, playerID string, version int) (map[string]any, error) {
	if version != 2 {
		resp, err := c.execute(ctx, "playerinfo", version, playerID)
		if err != nil {
			return nil, err
		}
		return map[string]any{"raw": resp.ContentBody}, nil
	}
	return c.getServerInformation(ctx, "player", playerID, version)
}

// GetPlayers retrieves detailed information about every connected
// player, equivalent to calling GetPlayer for each of them.
func (c *Commands) GetPlayers(ctx context.Context, version int) (map[string]any, error) {
	if version != 2 {
		resp, err := c.execute(ctx, "get playerids", version, "")
		if err != nil {
			return nil, err
		}
		return map[string]any{"raw": resp.ContentBody}, nil
	}
	return c.getServerInformation(ctx, "players", "", version)
}

func (c *Commands) getServerInformation(ctx context.Context, name, value string, version int) (map[string]any, error) {
	body, err := marshalBody(map[string]string{"Name": name, "Value": value})
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, "GetServerInformation", version, body)
	var result map[string]any
	if err := decodeInto(resp, err, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Broadcast shows message at the top of every connected player's
// screen.
func (c *Commands) Broadcast(ctx context.Context, message string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "broadcast", version, message)
		return err
	}
	body, err := marshalBody(map[string]string{"Message": message})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "ServerBroadcast", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// MessagePlayer shows message in a box in the top right corner of one
// player's screen.
func (c *Commands) MessagePlayer(ctx context.Context, playerID, message string, version int) error {
	if version != 2 {
		return errUnsupportedV1("message player")
	}
	body, err := marshalBody(map[string]string{"Message": message, "PlayerId": playerID})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "MessagePlayer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// KillPlayer kills a player immediately, optionally showing them
// message as the reason. Returns false (not an error) if the player
// was not found.
func (c *Commands) KillPlayer(ctx context.Context, playerID, message string, version int) (bool, error) {
	var err error
	if version != 2 {
		_, err = c.execute(ctx, "punish", version, playerID+" "+message)
	} else {
		var body string
		body, err = marshalBody(map[string]string{"PlayerId": playerID, "Reason": message})
		if err == nil {
			var resp wire.Response
			resp, err = c.execute(ctx, "PunishPlayer", version, body)
			if err == nil {
				err = resp.RaiseForStatus()
			}
		}
	}
	return asBool(err, 500)
}

// KickPlayer disconnects a player from the server, showing them
// message as the reason. Returns false if the player was not found.
func (c *Commands) KickPlayer(ctx context.Context, playerID, message string, version int) (bool, error) {
	var err error
	if version != 2 {
		_, err = c.execute(ctx, "kick", version, playerID+" "+message)
	} else {
		var body string
		body, err = marshalBody(map[string]string{"PlayerId": playerID, "Reason": message})
		if err == nil {
			var resp wire.Response
			resp, err = c.execute(ctx, "KickPlayer", version, body)
			if err == nil {
				err = resp.RaiseForStatus()
			}
		}
	}
	return asBool(err, 400)
}

// BanPlayer bans a player. A zero durationHours bans permanently.
func (c *Commands) BanPlayer(ctx context.Context, playerID, reason, adminName string, durationHours int, version int) error {
	if version != 2 {
		name := "permaban"
		args := fmt.Sprintf("%s %s %s", playerID, reason, adminName)
		if durationHours > 0 {
			name = "tempban"
			args = fmt.Sprintf("%s %d %s %s", playerID, durationHours, reason, adminName)
		}
		_, err := c.execute(ctx, name, version, args)
		return err
	}

	name := "PermanentBanPlayer"
	fields := map[string]any{"PlayerId": playerID, "Reason": reason, "AdminName": adminName}
	if durationHours > 0 {
		name = "TemporaryBanPlayer"
		fields["Duration"] = durationHours
	}
	body, err := marshalBody(fields)
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, name, version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveTemporaryBan lifts a temporary ban. Returns false if the
// player was not temporarily banned.
func (c *Commands) RemoveTemporaryBan(ctx context.Context, playerID string, version int) (bool, error) {
	var err error
	if version != 2 {
		_, err = c.execute(ctx, "pardontempban", version, playerID)
	} else {
		var body string
		body, err = marshalBody(map[string]string{"PlayerId": playerID})
		if err == nil {
			var resp wire.Response
			resp, err = c.execute(ctx, "RemoveTemporaryBan", version, body)
			if err == nil {
				err = resp.RaiseForStatus()
			}
		}
	}
	return asBool(err, 400)
}

// RemovePermanentBan lifts a permanent ban. Returns false if the
// player was not permanently banned.
func (c *Commands) RemovePermanentBan(ctx context.Context, playerID string, version int) (bool, error) {
	var err error
	if version != 2 {
		_, err = c.execute(ctx, "pardonpermaban", version, playerID)
	} else {
		var body string
		body, err = marshalBody(map[string]string{"PlayerId": playerID})
		if err == nil {
			var resp wire.Response
			resp, err = c.execute(ctx, "RemovePermanentBan", version, body)
			if err == nil {
				err = resp.RaiseForStatus()
			}
		}
	}
	return asBool(err, 400)
}

// AddVipPlayer grants a player VIP status.
func (c *Commands) AddVipPlayer(ctx context.Context, playerID, description string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "vipadd", version, playerID+" "+description)
		return err
	}
	body, err := marshalBody(map[string]string{"PlayerId": playerID, "Description": description})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "AddVipPlayer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveVipPlayer revokes a player's VIP status.
func (c *Commands) RemoveVipPlayer(ctx context.Context, playerID string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "vipdel", version, playerID)
		return err
	}
	body, err := marshalBody(map[string]string{"PlayerId": playerID})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveVipPlayer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// AddBannedWords extends the server's profanity filter.
func (c *Commands) AddBannedWords(ctx context.Context, words []string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "addprofanity", version, joinSpace(words))
		return err
	}
	body, err := marshalBody(map[string]string{"BannedWords": joinComma(words)})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "AddBannedWords", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveBannedWords shrinks the server's profanity filter.
func (c *Commands) RemoveBannedWords(ctx context.Context, words []string, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "removeprofanity", version, joinSpace(words))
		return err
	}
	body, err := marshalBody(map[string]string{"BannedWords": joinComma(words)})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveBannedWords", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetTeamSwitchCooldown sets how long, in minutes, a player must wait
// before switching teams again. Zero disables the cooldown.
func (c *Commands) SetTeamSwitchCooldown(ctx context.Context, minutes int, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "setteamswitchcooldown", version, itoa(minutes))
		return err
	}
	body, err := marshalBody(map[string]int{"TeamSwitchTimer": minutes})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetTeamSwitchCooldown", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetMaxQueuedPlayers sets the queue size limit (0-6).
func (c *Commands) SetMaxQueuedPlayers(ctx context.Context, num int, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "setmaxqueuedplayers", version, itoa(num))
		return err
	}
	body, err := marshalBody(map[string]int{"MaxQueuedPlayers": num})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetMaxQueuedPlayers", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetIdleKickDuration sets how many idle minutes trigger a kick. Zero
// disables idle kicking.
func (c *Commands) SetIdleKickDuration(ctx context.Context, minutes int, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "setkickidletime", version, itoa(minutes))
		return err
	}
	body, err := marshalBody(map[string]int{"IdleTimeoutMinutes": minutes})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetIdleKickDuration", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetWelcomeMessage sets the message shown on the deployment screen
// and briefly on spawn.
func (c *Commands) SetWelcomeMessage(ctx context.Context, message string, version int) error {
	if version != 2 {
		return errUnsupportedV1("set welcome message")
	}
	body, err := marshalBody(map[string]string{"Message": message})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SendServerMessage", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetHighPingThreshold kicks players whose ping exceeds ms. Zero
// disables the threshold.
func (c *Commands) SetHighPingThreshold(ctx context.Context, ms int, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "sethighping", version, itoa(ms))
		return err
	}
	body, err := marshalBody(map[string]int{"HighPingThresholdMs": ms})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetHighPingThreshold", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetAutoBalance toggles automatic team balancing.
func (c *Commands) SetAutoBalance(ctx context.Context, enabled bool, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "setautobalanceenabled", version, onOff(enabled))
		return err
	}
	body, err := marshalBody(map[string]bool{"EnableAutoBalance": enabled})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetAutoBalance", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetVoteKick toggles whether players may vote to kick one another.
func (c *Commands) SetVoteKick(ctx context.Context, enabled bool, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "setvotekickenabled", version, onOff(enabled))
		return err
	}
	body, err := marshalBody(map[string]bool{"Enabled": enabled})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetVoteKick", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetAutoBalanceThreshold sets how many players a team may outnumber
// the other by before auto-balance kicks in.
func (c *Commands) SetAutoBalanceThreshold(ctx context.Context, playerThreshold int, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "setautobalancethreshold", version, itoa(playerThreshold))
		return err
	}
	body, err := marshalBody(map[string]int{"AutoBalanceThreshold": playerThreshold})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetAutoBalanceThreshold", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// ResetVoteKickThreshold resets the vote-kick threshold table to its
// server-side default.
func (c *Commands) ResetVoteKickThreshold(ctx context.Context, version int) error {
	if version != 2 {
		_, err := c.execute(ctx, "resetvotekickthreshold", version, "")
		return err
	}
	resp, err := c.execute(ctx, "ResetKickThreshold", version, "")
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// VoteKickThreshold is one (playerCount, votesRequired) pair in the
// vote-kick threshold table.
type VoteKickThreshold struct {
	PlayerCount   int
	VotesRequired int
}

// SetVoteKickThreshold replaces the vote-kick threshold table.
func (c *Commands) SetVoteKickThreshold(ctx context.Context, thresholds []VoteKickThreshold, version int) error {
	if version != 2 {
		return errUnsupportedV1("set vote kick threshold")
	}
	pairs := make([]string, len(thresholds))
	for i, t := range thresholds {
		pairs[i] = fmt.Sprintf("%d,%d", t.PlayerCount, t.VotesRequired)
	}
	body, err := marshalBody(map[string]string{"ThresholdValue": strings.Join(pairs, ",")})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetVoteKickThreshold", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// GameMode names one of the server's match formats, used by the match
// and warmup timer commands.
type GameMode string

const (
	GameModeWarfare   GameMode = "Warfare"
	GameModeOffensive GameMode = "Offensive"
	GameModeSkirmish  GameMode = "Skirmish"
)

// SetMatchTimer sets the match length, in minutes, for gameMode.
func (c *Commands) SetMatchTimer(ctx context.Context, gameMode GameMode, minutes int, version int) error {
	if version != 2 {
		return errUnsupportedV1("set match timer")
	}
	body, err := marshalBody(map[string]any{"GameMode": gameMode, "MatchLength": minutes})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetMatchTimer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveMatchTimer clears the match timer for gameMode.
func (c *Commands) RemoveMatchTimer(ctx context.Context, gameMode GameMode, version int) error {
	if version != 2 {
		return errUnsupportedV1("remove match timer")
	}
	body, err := marshalBody(map[string]any{"GameMode": gameMode})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveMatchTimer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetWarmupTimer sets the warmup length, in minutes, for gameMode.
func (c *Commands) SetWarmupTimer(ctx context.Context, gameMode GameMode, minutes int, version int) error {
	if version != 2 {
		return errUnsupportedV1("set warmup timer")
	}
	body, err := marshalBody(map[string]any{"GameMode": gameMode, "WarmupLength": minutes})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetWarmupTimer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// RemoveWarmupTimer clears the warmup timer for gameMode.
func (c *Commands) RemoveWarmupTimer(ctx context.Context, gameMode GameMode, version int) error {
	if version != 2 {
		return errUnsupportedV1("remove warmup timer")
	}
	body, err := marshalBody(map[string]any{"GameMode": gameMode})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "RemoveWarmupTimer", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

// SetDynamicWeatherToggle enables or disables dynamic weather on
// mapID.
func (c *Commands) SetDynamicWeatherToggle(ctx context.Context, mapID string, enable bool, version int) error {
	if version != 2 {
		return errUnsupportedV1("set dynamic weather toggle")
	}
	body, err := marshalBody(map[string]any{"MapId": mapID, "Enable": enable})
	if err != nil {
		return err
	}
	resp, err := c.execute(ctx, "SetMapWeatherToggle", version, body)
	if err != nil {
		return err
	}
	return resp.RaiseForStatus()
}

func joinSpace(words []string) string { return joinWith(words, " ") }
func joinComma(words []string) string { return joinWith(words, ",") }

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func joinWith(words []string, sep string) string {
	return strings.Join(words, sep)
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
