package descriptors

type DescriptorType byte

const (
	DescriptorTypeInterface              DescriptorType = 0x04
	DescriptorTypeEndpoint               DescriptorType = 0x05
	DescriptorTypeClassSpecificInterface DescriptorType = 0x24
	DescriptorTypeClassSpecificEndpoint  DescriptorType = 0x25
)

type ClassCode byte

const (
	ClassCodeAudio ClassCode = 0x01
)

type SubclassCode byte

const (
	SubclassCodeUndefined      SubclassCode = 0x00
	SubclassCodeAudioControl   SubclassCode = 0x01
	SubclassCodeAudioStreaming SubclassCode = 0x02
	SubclassCodeMIDIStreaming  SubclassCode = 0x03
)

type AudioControlInterfaceDescriptorSubtype byte

const (
	AudioControlInterfaceDescriptorSubtypeUndefined           AudioControlInterfaceDescriptorSubtype = 0x00
	AudioControlInterfaceDescriptorSubtypeHeader              AudioControlInterfaceDescriptorSubtype = 0x01
	AudioControlInterfaceDescriptorSubtypeInputTerminal       AudioControlInterfaceDescriptorSubtype = 0x02
	AudioControlInterfaceDescriptorSubtypeOutputTerminal      AudioControlInterfaceDescriptorSubtype = 0x03
	AudioControlInterfaceDescriptorSubtypeMixerUnit           AudioControlInterfaceDescriptorSubtype = 0x04
	AudioControlInterfaceDescriptorSubtypeSelectorUnit        AudioControlInterfaceDescriptorSubtype = 0x05
	AudioControlInterfaceDescriptorSubtypeFeatureUnit         AudioControlInterfaceDescriptorSubtype = 0x06
	AudioControlInterfaceDescriptorSubtypeProcessingUnit      AudioControlInterfaceDescriptorSubtype = 0x07
	AudioControlInterfaceDescriptorSubtypeExtensionUnit       AudioControlInterfaceDescriptorSubtype = 0x08
	AudioControlInterfaceDescriptorSubtypeClockSource         AudioControlInterfaceDescriptorSubtype = 0x0A // UAC2
	AudioControlInterfaceDescriptorSubtypeClockSelector       AudioControlInterfaceDescriptorSubtype = 0x0B // UAC2
	AudioControlInterfaceDescriptorSubtypeClockMultiplier     AudioControlInterfaceDescriptorSubtype = 0x0C // UAC2
	AudioControlInterfaceDescriptorSubtypeSampleRateConverter AudioControlInterfaceDescriptorSubtype = 0x0D // UAC2
)

type AudioStreamingInterfaceDescriptorSubtype byte

const (
	AudioStreamingInterfaceDescriptorSubtypeUndefined      AudioStreamingInterfaceDescriptorSubtype = 0x00
	AudioStreamingInterfaceDescriptorSubtypeGeneral        AudioStreamingInterfaceDescriptorSubtype = 0x01
	AudioStreamingInterfaceDescriptorSubtypeFormatType     AudioStreamingInterfaceDescriptorSubtype = 0x02
	AudioStreamingInterfaceDescriptorSubtypeFormatSpecific AudioStreamingInterfaceDescriptorSubtype = 0x03
)

// Format tags carried by the UAC1 AS General descriptor.
const (
	FormatTagUndefined uint16 = 0x0000
	FormatTagPCM       uint16 = 0x0001
	FormatTagPCM8      uint16 = 0x0002
	FormatTagIEEEFloat uint16 = 0x0003
	FormatTagALaw      uint16 = 0x0004
	FormatTagMuLaw     uint16 = 0x0005
)

// Format type codes for the Format Type descriptor.
const (
	FormatTypeUndefined uint8 = 0x00
	FormatTypeI         uint8 = 0x01
	FormatTypeII        uint8 = 0x02
	FormatTypeIII       uint8 = 0x03
)
