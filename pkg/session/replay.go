package session

import (
	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/ports"
)

// maxFrameNum bounds frame_num for the common log2_max_frame_num of 4.
const maxFrameNum = 16

// replayUnits derives the per-unit stream state implied by the sample
// structure: frame_num restarts at every IDR and idr_pic_id advances per IDR.
// Samples before the first sync sample carry no IDR id.
func replayUnits(info ports.StreamInfo) []codec.UnitInfo {
	units := make([]codec.UnitInfo, 0, info.Samples)
	keyframes := make(map[int]bool, len(info.Keyframes))
	for _, k := range info.Keyframes {
		keyframes[k] = true
	}

	frameNum := int32(-1)
	idrPicID := int32(-1)
	for i := 0; i < info.Samples; i++ {
		if keyframes[i] {
			frameNum = 0
			idrPicID = (idrPicID + 1) % 65536
		} else {
			frameNum = (frameNum + 1) % maxFrameNum
		}
		units = append(units, codec.UnitInfo{
			TemporalID:        0,
			FrameNum:          frameNum,
			IDRPicID:          idrPicID,
			LTRMarkedFrameNum: -1,
		})
	}
	return units
}
