package converter

import (
	"github.com/transitkit/txc-gtfs/model"
)

// produceAgencies builds one GTFS agency per TXC operator.
func produceAgencies(doc *model.TxcDocument, opts ConversionOptions) []*model.Agency {
	agencies := make([]*model.Agency, 0, len(doc.Operators))
	for _, op := range doc.Operators {
		agencies = append(agencies, &model.Agency{
			AgencyID:       op.ID,
			AgencyName:     op.DisplayName(),
			AgencyURL:      "",
			AgencyTimezone: opts.agencyTimezone(),
		})
	}
	return agencies
}
