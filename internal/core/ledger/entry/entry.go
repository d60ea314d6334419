package entry

import (
	"fmt"
)

// Type represents a ledger entry type
type Type uint16

// Ledger entry types that can be referenced from, or stored as, directories.
// Reference: rippled/include/xrpl/protocol/detail/ledger_entries.macro
const (
	// TypeAny matches any entry type; used for unchecked lookups of
	// directory members.
	TypeAny Type = 0x0000

	TypeCheck      Type = 0x0043 // Check objects
	TypeSignerList Type = 0x0053 // Multi-signing lists
	TypeTicket     Type = 0x0054 // Sequence tickets

	TypeAccountRoot   Type = 0x0061 // Account objects
	TypeDirectoryNode Type = 0x0064 // Directory nodes

	TypeOffer       Type = 0x006f // DEX offers
	TypeRippleState Type = 0x0072 // Trust lines
	TypeEscrow      Type = 0x0075 // Escrow objects
	TypePayChannel  Type = 0x0078 // Payment channels
)

// String returns the string representation of the Type
func (t Type) String() string {
	switch t {
	case TypeAny:
		return "Any"
	case TypeCheck:
		return "Check"
	case TypeSignerList:
		return "SignerList"
	case TypeTicket:
		return "Ticket"
	case TypeAccountRoot:
		return "AccountRoot"
	case TypeDirectoryNode:
		return "DirectoryNode"
	case TypeOffer:
		return "Offer"
	case TypeRippleState:
		return "RippleState"
	case TypeEscrow:
		return "Escrow"
	case TypePayChannel:
		return "PayChannel"
	default:
		return fmt.Sprintf("Unknown(%#x)", uint16(t))
	}
}
