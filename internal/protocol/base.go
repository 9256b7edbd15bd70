// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package protocol

import "github.com/careerdesk/careerdesk/internal/common"

// Re-export common types so callers only need the protocol package.
type Metadata = common.Metadata

// Event is re-exported from common.
type Event = common.Event

// CurrentProtocolVersion is re-exported from common.
const CurrentProtocolVersion = common.CurrentProtocolVersion

// NewMetadata is re-exported from common.
func NewMetadata() Metadata {
	return common.NewMetadata()
}
