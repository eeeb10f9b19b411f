package friends

import "strings"

const noFriendsMessage = "You have not added any friends."

// Format renders names as a sentence:
//
//	[]                 -> You have not added any friends.
//	[Ana]              -> Ana is your friend.
//	[Ana Bo]           -> Ana and Bo are your friends.
//	[Ana Bo Cy]        -> Ana, Bo, and Cy are your friends.
func Format(names []string) string {
	switch len(names) {
	case 0:
		return noFriendsMessage
	case 1:
		return names[0] + " is your friend."
	case 2:
		return names[0] + " and " + names[1] + " are your friends."
	default:
		last := len(names) - 1
		return strings.Join(names[:last], ", ") + ", and " + names[last] + " are your friends."
	}
}
