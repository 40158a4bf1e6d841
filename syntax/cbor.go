package syntax

import (
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// CIKs are encoded as CBOR unsigned integers (major type 0). This makes CIK usable as a field type in cbor-gen structs.
func (c CIK) MarshalCBOR(w io.Writer) error {
	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, c.v); err != nil {
		return xerrors.Errorf("failed to write CIK as CBOR: %w", err)
	}
	return nil
}

// Accepts either an unsigned integer or a text string, mirroring [CIK.UnmarshalJSON].
func (c *CIK) UnmarshalCBOR(r io.Reader) error {
	cr := cbg.NewCborReader(r)
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return xerrors.Errorf("failed to read CIK CBOR header: %w", err)
	}

	switch maj {
	case cbg.MajUnsignedInt:
		cik, err := CIKFromInteger(extra)
		if err != nil {
			return xerrors.Errorf("failed to decode CIK integer: %w", err)
		}
		*c = cik
		return nil
	case cbg.MajTextString:
		if extra > uint64(cbg.MaxLength) {
			return xerrors.Errorf("CIK string in CBOR was too long (%d bytes)", extra)
		}
		buf := make([]byte, extra)
		if _, err := io.ReadFull(cr, buf); err != nil {
			return xerrors.Errorf("failed to read CIK string from CBOR: %w", err)
		}
		cik, err := ParseCIK(string(buf))
		if err != nil {
			return xerrors.Errorf("failed to parse CIK string: %w", err)
		}
		*c = cik
		return nil
	default:
		return xerrors.Errorf("wrong CBOR type for CIK: major type %d", maj)
	}
}
